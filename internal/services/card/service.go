package card

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/quadro/internal/database"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// Service defines the card lifecycle: creation, column transitions and blocking.
//
// Every transition takes the board's column metadata as an argument; the
// service never loads board structure itself. Each call re-reads the card
// inside its own transaction and either commits all of its writes or none.
type Service interface {
	// Read operations
	GetCardDetail(ctx context.Context, cardID types.CardID) (*models.CardDetail, error)
	ListCardsByColumn(ctx context.Context, columnID types.ColumnID) ([]*models.Card, error)
	GetBlockHistory(ctx context.Context, cardID types.CardID) ([]*models.BlockEvent, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)

	// Transitions
	Advance(ctx context.Context, cardID types.CardID, columns models.ColumnSet) error
	Cancel(ctx context.Context, cardID types.CardID, cancelColumnID types.ColumnID, columns models.ColumnSet) error
	Block(ctx context.Context, cardID types.CardID, reason string, columns models.ColumnSet) error
	Unblock(ctx context.Context, cardID types.CardID, reason string) error
}

// CreateCardRequest encapsulates all data needed to create a card
type CreateCardRequest struct {
	Title       string
	Description string
	Columns     models.ColumnSet // Columns of the target board; the card lands in its INITIAL column
}

// StoreFactory builds the card collaborators bound to a transaction
type StoreFactory func(tx database.DBTX) database.CardStore

// service implements Service interface
type service struct {
	repo   *database.Repository
	uow    database.UnitOfWork
	stores StoreFactory
	actor  string
	logger *slog.Logger
}

// NewService creates a new card service. actor is recorded on block ledger
// entries; a nil logger falls back to slog.Default().
func NewService(repo *database.Repository, uow database.UnitOfWork, actor string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo: repo,
		uow:  uow,
		stores: func(tx database.DBTX) database.CardStore {
			return database.NewRepository(tx).CardStore()
		},
		actor:  actor,
		logger: logger,
	}
}

// CreateCard inserts a card into the board's INITIAL column
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > models.MaxCardTitleLength {
		return nil, ErrTitleTooLong
	}
	if len(req.Columns) == 0 {
		return nil, ErrInvalidColumns
	}

	initial, ok := req.Columns.FirstOfKind(models.ColumnKindInitial)
	if !ok {
		return nil, invalidState(0, "board has no %s column", models.ColumnKindInitial)
	}

	var created *models.Card
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		card, err := s.stores(tx).Insert(ctx, &models.Card{
			Title:       title,
			Description: req.Description,
			ColumnID:    initial.ID,
		})
		if err != nil {
			return err
		}
		created = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card created", "card_id", created.ID, "column_id", created.ColumnID)
	return created, nil
}

// Advance moves a card to the column at the next order
func (s *service) Advance(ctx context.Context, cardID types.CardID, columns models.ColumnSet) error {
	if cardID <= 0 {
		return ErrInvalidCardID
	}

	return s.transition(ctx, "advance", cardID, func(ctx context.Context, store database.CardStore, card *models.Card) error {
		current, next, err := resolveForwardMove(card, columns)
		if err != nil {
			return err
		}

		if err := store.MoveToColumn(ctx, next.ID, card.ID); err != nil {
			return err
		}

		s.logger.Debug("card advanced",
			"card_id", card.ID,
			"from_column", current.ID,
			"to_column", next.ID)
		return nil
	})
}

// Cancel moves a card straight to cancelColumnID.
// The card must still have a forward path, exactly as for Advance.
func (s *service) Cancel(ctx context.Context, cardID types.CardID, cancelColumnID types.ColumnID, columns models.ColumnSet) error {
	if cardID <= 0 {
		return ErrInvalidCardID
	}

	return s.transition(ctx, "cancel", cardID, func(ctx context.Context, store database.CardStore, card *models.Card) error {
		current, _, err := resolveForwardMove(card, columns)
		if err != nil {
			return err
		}

		// The target is used as given. Only a column the metadata itself
		// lists under another kind is refused.
		if target, ok := columns.Find(cancelColumnID); ok && target.Kind != models.ColumnKindCancel {
			return invalidState(card.ID, "column %d is a %s column, not %s", cancelColumnID, target.Kind, models.ColumnKindCancel)
		}

		if err := store.MoveToColumn(ctx, cancelColumnID, card.ID); err != nil {
			return err
		}

		s.logger.Debug("card cancelled",
			"card_id", card.ID,
			"from_column", current.ID,
			"to_column", cancelColumnID)
		return nil
	})
}

// Block marks a card as blocked and records why
func (s *service) Block(ctx context.Context, cardID types.CardID, reason string, columns models.ColumnSet) error {
	if cardID <= 0 {
		return ErrInvalidCardID
	}
	reason, err := validateReason(reason)
	if err != nil {
		return err
	}

	return s.transition(ctx, "block", cardID, func(ctx context.Context, store database.CardStore, card *models.Card) error {
		if card.Blocked {
			return alreadyBlocked(card.ID)
		}

		current, err := currentColumn(card, columns)
		if err != nil {
			return err
		}

		if current.Kind == models.ColumnKindFinal || current.Kind == models.ColumnKindCancel {
			return cannotBlockIn(card.ID, current.Kind)
		}

		if err := store.Block(ctx, reason, s.actor, card.ID); err != nil {
			return err
		}

		s.logger.Debug("card blocked", "card_id", card.ID, "column_id", current.ID)
		return nil
	})
}

// Unblock clears a card's blocked flag and records why
func (s *service) Unblock(ctx context.Context, cardID types.CardID, reason string) error {
	if cardID <= 0 {
		return ErrInvalidCardID
	}
	reason, err := validateReason(reason)
	if err != nil {
		return err
	}

	return s.transition(ctx, "unblock", cardID, func(ctx context.Context, store database.CardStore, card *models.Card) error {
		if !card.Blocked {
			return notBlocked(card.ID)
		}

		if err := store.Unblock(ctx, reason, s.actor, card.ID); err != nil {
			return err
		}

		s.logger.Debug("card unblocked", "card_id", card.ID)
		return nil
	})
}

// GetCardDetail retrieves a card with its column
func (s *service) GetCardDetail(ctx context.Context, cardID types.CardID) (*models.CardDetail, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}

	detail, err := s.repo.Cards.GetDetail(ctx, cardID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound(cardID)
	}
	return detail, err
}

// ListCardsByColumn retrieves the cards of a column. An unknown column is
// NOT_FOUND rather than an empty list.
func (s *service) ListCardsByColumn(ctx context.Context, columnID types.ColumnID) ([]*models.Card, error) {
	if columnID <= 0 {
		return nil, ErrInvalidColumnID
	}

	if _, err := s.repo.Columns.GetByID(ctx, columnID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, columnNotFound(columnID)
		}
		return nil, err
	}

	return s.repo.Cards.ListByColumn(ctx, columnID)
}

// GetBlockHistory retrieves the block ledger of a card
func (s *service) GetBlockHistory(ctx context.Context, cardID types.CardID) ([]*models.BlockEvent, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}

	if _, err := s.repo.Cards.FindByID(ctx, cardID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, notFound(cardID)
		}
		return nil, err
	}

	return s.repo.Blocks.History(ctx, cardID)
}

// transition loads the card inside a unit of work and hands it to apply.
// Any error from apply rolls the whole unit back.
func (s *service) transition(ctx context.Context, op string, cardID types.CardID,
	apply func(ctx context.Context, store database.CardStore, card *models.Card) error,
) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		store := s.stores(tx)

		card, err := store.FindByID(ctx, cardID)
		if errors.Is(err, database.ErrNotFound) {
			return notFound(cardID)
		}
		if err != nil {
			return err
		}

		return apply(ctx, store, card)
	})

	if kind := KindOf(err); kind != KindUnknown {
		s.logger.Info("card transition rejected", "op", op, "card_id", cardID, "kind", kind.String())
	}
	return err
}

func validateReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", ErrEmptyReason
	}
	if len(reason) > models.MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return reason, nil
}
