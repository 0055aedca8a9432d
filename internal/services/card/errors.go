package card

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// Validation errors, returned before any storage access
var (
	ErrEmptyTitle      = errors.New("card title cannot be empty")
	ErrTitleTooLong    = fmt.Errorf("card title cannot exceed %d characters", models.MaxCardTitleLength)
	ErrInvalidCardID   = errors.New("invalid card ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrEmptyReason     = errors.New("reason cannot be empty")
	ErrReasonTooLong   = fmt.Errorf("reason cannot exceed %d characters", models.MaxReasonLength)
	ErrInvalidColumns  = errors.New("board column metadata is empty")
)

// Kind classifies why a card transition was rejected.
// The set is closed: callers switch on it instead of parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindBlocked
	KindAlreadyFinished
	KindCancelled
	KindWrongBoard
	KindInvalidState
)

var kindNames = map[Kind]string{
	KindUnknown:         "UNKNOWN",
	KindNotFound:        "NOT_FOUND",
	KindBlocked:         "BLOCKED",
	KindAlreadyFinished: "ALREADY_FINISHED",
	KindCancelled:       "CANCELLED",
	KindWrongBoard:      "WRONG_BOARD",
	KindInvalidState:    "INVALID_STATE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// TransitionError is the failure of a card transition.
type TransitionError struct {
	Kind    Kind
	CardID  types.CardID
	Message string
}

func (e *TransitionError) Error() string {
	return e.Message
}

// Is matches any TransitionError of the same kind, so the sentinels below
// work with errors.Is regardless of card or message.
func (e *TransitionError) Is(target error) bool {
	t, ok := target.(*TransitionError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is matching
var (
	ErrNotFound        = &TransitionError{Kind: KindNotFound, Message: "card not found"}
	ErrBlocked         = &TransitionError{Kind: KindBlocked, Message: "card blocked state conflict"}
	ErrAlreadyFinished = &TransitionError{Kind: KindAlreadyFinished, Message: "card already finished"}
	ErrCancelled       = &TransitionError{Kind: KindCancelled, Message: "card cancelled"}
	ErrWrongBoard      = &TransitionError{Kind: KindWrongBoard, Message: "card belongs to another board"}
	ErrInvalidState    = &TransitionError{Kind: KindInvalidState, Message: "invalid card state"}
)

// KindOf returns the transition kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var te *TransitionError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

func notFound(id types.CardID) error {
	return &TransitionError{Kind: KindNotFound, CardID: id,
		Message: fmt.Sprintf("card %d not found", id)}
}

// columnNotFound carries no card; CardID stays zero
func columnNotFound(id types.ColumnID) error {
	return &TransitionError{Kind: KindNotFound,
		Message: fmt.Sprintf("column %d not found", id)}
}

func blockedForMove(id types.CardID) error {
	return &TransitionError{Kind: KindBlocked, CardID: id,
		Message: fmt.Sprintf("card %d is blocked, unblock it before moving", id)}
}

func alreadyBlocked(id types.CardID) error {
	return &TransitionError{Kind: KindBlocked, CardID: id,
		Message: fmt.Sprintf("card %d is already blocked", id)}
}

func notBlocked(id types.CardID) error {
	return &TransitionError{Kind: KindBlocked, CardID: id,
		Message: fmt.Sprintf("card %d is not blocked", id)}
}

func alreadyFinished(id types.CardID) error {
	return &TransitionError{Kind: KindAlreadyFinished, CardID: id,
		Message: fmt.Sprintf("card %d is already finished", id)}
}

func cancelled(id types.CardID) error {
	return &TransitionError{Kind: KindCancelled, CardID: id,
		Message: fmt.Sprintf("card %d is cancelled", id)}
}

func wrongBoard(id types.CardID) error {
	return &TransitionError{Kind: KindWrongBoard, CardID: id,
		Message: fmt.Sprintf("card %d belongs to another board", id)}
}

func cannotBlockIn(id types.CardID, kind models.ColumnKind) error {
	return &TransitionError{Kind: KindInvalidState, CardID: id,
		Message: fmt.Sprintf("card %d is in a %s column and cannot be blocked", id, kind)}
}

func invalidState(id types.CardID, format string, args ...any) error {
	return &TransitionError{Kind: KindInvalidState, CardID: id,
		Message: fmt.Sprintf(format, args...)}
}
