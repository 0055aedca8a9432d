package models

import (
	"time"

	"github.com/thenoetrevino/quadro/internal/types"
)

// BlockDirection tells whether a ledger entry blocked or unblocked a card
type BlockDirection string

const (
	BlockDirectionBlock   BlockDirection = "block"
	BlockDirectionUnblock BlockDirection = "unblock"
)

// BlockEvent is one append-only entry of a card's block ledger
type BlockEvent struct {
	ID        types.BlockEventID
	CardID    types.CardID
	Direction BlockDirection
	Reason    string
	Actor     string
	CreatedAt time.Time
}
