package models

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/quadro/internal/types"
)

// ColumnKind is the role a column plays in a board's workflow.
// Transition legality depends on the kind, never on the display name.
type ColumnKind string

const (
	ColumnKindInitial ColumnKind = "INITIAL"
	ColumnKindPending ColumnKind = "PENDING"
	ColumnKindFinal   ColumnKind = "FINAL"
	ColumnKindCancel  ColumnKind = "CANCEL"
)

// Valid reports whether k is one of the known column kinds
func (k ColumnKind) Valid() bool {
	switch k {
	case ColumnKindInitial, ColumnKindPending, ColumnKindFinal, ColumnKindCancel:
		return true
	}
	return false
}

// ParseColumnKind converts a case-insensitive name into a ColumnKind
func ParseColumnKind(s string) (ColumnKind, error) {
	kind := ColumnKind(strings.ToUpper(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("unknown column kind %q", s)
	}
	return kind, nil
}

// Column represents a kanban board column (e.g., "Todo", "Doing", "Done")
// Columns are ordered by a zero-based Order that is unique within a board
type Column struct {
	ID      types.ColumnID
	BoardID types.BoardID
	Name    string
	Kind    ColumnKind
	Order   int
}

// Info returns the transition metadata for the column
func (c *Column) Info() ColumnInfo {
	return ColumnInfo{ID: c.ID, Order: c.Order, Kind: c.Kind}
}

// ColumnInfo is the per-column metadata handed to the card service on every
// transition. It carries no display data.
type ColumnInfo struct {
	ID    types.ColumnID `json:"id"`
	Order int            `json:"order"`
	Kind  ColumnKind     `json:"kind"`
}

// ColumnSet is the ordered column metadata of a single board.
// Boards have a handful of columns, so every lookup is a linear scan.
type ColumnSet []ColumnInfo

// Find returns the column with the given id
func (s ColumnSet) Find(id types.ColumnID) (ColumnInfo, bool) {
	for _, c := range s {
		if c.ID == id {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// AtOrder returns the column sitting at the given order
func (s ColumnSet) AtOrder(order int) (ColumnInfo, bool) {
	for _, c := range s {
		if c.Order == order {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// FirstOfKind returns the lowest-ordered column of the given kind
func (s ColumnSet) FirstOfKind(kind ColumnKind) (ColumnInfo, bool) {
	var (
		found ColumnInfo
		ok    bool
	)
	for _, c := range s {
		if c.Kind != kind {
			continue
		}
		if !ok || c.Order < found.Order {
			found, ok = c, true
		}
	}
	return found, ok
}

// ColumnSummary is a DTO for the board overview: a column and how many cards it holds
type ColumnSummary struct {
	ID        types.ColumnID
	Name      string
	Kind      ColumnKind
	Order     int
	CardCount int
}
