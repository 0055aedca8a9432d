package models

import (
	"time"

	"github.com/thenoetrevino/quadro/internal/types"
)

// Board represents a container for kanban columns and cards
// Boards are the top-level organizational unit in Quadro
type Board struct {
	ID        types.BoardID
	Name      string
	Columns   []*Column // Sorted by Order
	CreatedAt time.Time
}

// GetID returns the board ID (used by quiet output mode)
func (b *Board) GetID() int {
	return b.ID.ToInt()
}

// InitialColumn returns the column new cards are created in, or nil
func (b *Board) InitialColumn() *Column {
	return b.firstOfKind(ColumnKindInitial)
}

// CancelColumn returns the column cancelled cards are moved to, or nil
func (b *Board) CancelColumn() *Column {
	return b.firstOfKind(ColumnKindCancel)
}

// ColumnSet returns the transition metadata for every column of the board
func (b *Board) ColumnSet() ColumnSet {
	set := make(ColumnSet, 0, len(b.Columns))
	for _, c := range b.Columns {
		set = append(set, c.Info())
	}
	return set
}

func (b *Board) firstOfKind(kind ColumnKind) *Column {
	for _, c := range b.Columns {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// BoardDetail is a DTO for the board overview
type BoardDetail struct {
	ID      types.BoardID
	Name    string
	Columns []*ColumnSummary
}
