package models

import (
	"time"

	"github.com/thenoetrevino/quadro/internal/types"
)

// Card represents a single card on a kanban board
type Card struct {
	ID           types.CardID
	Title        string
	Description  string
	ColumnID     types.ColumnID
	Blocked      bool
	BlockReason  string // Reason of the current block, empty when not blocked
	BlocksAmount int    // How many times the card has ever been blocked
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetID returns the card ID (used by quiet output mode)
func (c *Card) GetID() int {
	return c.ID.ToInt()
}

// CardDetail is a DTO for the full card view
// Contains the card plus the column it currently sits in
type CardDetail struct {
	Card
	BoardID    types.BoardID
	ColumnName string
	ColumnKind ColumnKind
}
