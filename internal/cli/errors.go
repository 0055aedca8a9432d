package cli

import (
	"errors"
	"fmt"
	"log/slog"

	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
)

// CommandError carries the process exit code of a failed command.
// The message has already been printed by the formatter when it is returned.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// Classify returns the machine-readable error code and exit code for err.
// Transition failures use their kind name as code.
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, cardservice.ErrNotFound):
		return cardservice.KindNotFound.String(), ExitNotFound
	case errors.Is(err, boardservice.ErrBoardNotFound):
		return "BOARD_NOT_FOUND", ExitNotFound
	}

	if kind := cardservice.KindOf(err); kind != cardservice.KindUnknown {
		return kind.String(), ExitValidation
	}

	switch {
	case errors.Is(err, cardservice.ErrEmptyTitle),
		errors.Is(err, cardservice.ErrTitleTooLong),
		errors.Is(err, cardservice.ErrEmptyReason),
		errors.Is(err, cardservice.ErrReasonTooLong),
		errors.Is(err, cardservice.ErrInvalidColumns),
		errors.Is(err, boardservice.ErrEmptyName),
		errors.Is(err, boardservice.ErrNameTooLong),
		errors.Is(err, boardservice.ErrInvalidLayout):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, cardservice.ErrInvalidCardID),
		errors.Is(err, cardservice.ErrInvalidColumnID),
		errors.Is(err, boardservice.ErrInvalidBoardID):
		return "INVALID_ID", ExitUsage
	}

	return "INTERNAL_ERROR", ExitError
}

// Fail prints err through the formatter and returns it wrapped with its exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestionFor(err)); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exit, Err: err}
}

// FailWith prints err under an explicit code, for failures Classify cannot name
func (f *OutputFormatter) FailWith(code string, exit int, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exit, Err: err}
}

// Usage reports a usage problem detected before any service call
func (f *OutputFormatter) Usage(code, message, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: ExitUsage, Err: errors.New(message)}
}

func suggestionFor(err error) string {
	var transitionErr *cardservice.TransitionError
	if !errors.As(err, &transitionErr) {
		if errors.Is(err, boardservice.ErrBoardNotFound) {
			return "Use 'quadro board list' to see available boards"
		}
		return ""
	}

	switch transitionErr.Kind {
	case cardservice.KindBlocked:
		return fmt.Sprintf("Check the block with 'quadro card show --id=%d'", transitionErr.CardID)
	case cardservice.KindWrongBoard:
		return "Omit --board to use the card's own board"
	case cardservice.KindNotFound:
		if transitionErr.CardID == 0 {
			return "Use 'quadro board show --id=<board-id>' to see column IDs"
		}
		return "Use 'quadro card list --column=<id>' to see available cards"
	default:
		return ""
	}
}
