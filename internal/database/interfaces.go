// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// CardRepository is the card persistence collaborator of the card service.
type CardRepository interface {
	FindByID(ctx context.Context, id types.CardID) (*models.Card, error)
	Insert(ctx context.Context, card *models.Card) (*models.Card, error)
	MoveToColumn(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error
}

// BlockLedger records block/unblock events and keeps the card's blocked flag in sync.
type BlockLedger interface {
	Block(ctx context.Context, reason, actor string, cardID types.CardID) error
	Unblock(ctx context.Context, reason, actor string, cardID types.CardID) error
}

// CardStore is everything a card transition touches inside one unit of work.
type CardStore interface {
	CardRepository
	BlockLedger
}

var (
	_ CardRepository = (*CardRepo)(nil)
	_ BlockLedger    = (*BlockRepo)(nil)
	_ CardStore      = cardStore{}
)
