package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// BlockRepo is the block ledger: it flips a card's blocked flag and appends
// the matching event. Both writes must run inside the same transaction.
type BlockRepo struct {
	db DBTX
}

// Block marks the card as blocked, bumps its block counter and records the reason.
func (r *BlockRepo) Block(ctx context.Context, reason, actor string, cardID types.CardID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET blocked = 1, block_reason = ?, blocks_amount = blocks_amount + 1,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		reason, cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to block card %d: %w", cardID, err)
	}
	if err := expectAffected(result); err != nil {
		return fmt.Errorf("card %d: %w", cardID, err)
	}
	return r.appendEvent(ctx, cardID, models.BlockDirectionBlock, reason, actor)
}

// Unblock clears the blocked flag and records the reason.
func (r *BlockRepo) Unblock(ctx context.Context, reason, actor string, cardID types.CardID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET blocked = 0, block_reason = NULL, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to unblock card %d: %w", cardID, err)
	}
	if err := expectAffected(result); err != nil {
		return fmt.Errorf("card %d: %w", cardID, err)
	}
	return r.appendEvent(ctx, cardID, models.BlockDirectionUnblock, reason, actor)
}

// History returns every ledger entry of a card in the order it was appended.
func (r *BlockRepo) History(ctx context.Context, cardID types.CardID) ([]*models.BlockEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, card_id, direction, reason, actor, created_at
		 FROM block_events
		 WHERE card_id = ?
		 ORDER BY id`,
		cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get block history of card %d: %w", cardID, err)
	}
	defer rows.Close()

	var events []*models.BlockEvent
	for rows.Next() {
		var (
			event     models.BlockEvent
			direction string
		)
		if err := rows.Scan(&event.ID, &event.CardID, &direction, &event.Reason, &event.Actor, &event.CreatedAt); err != nil {
			return nil, err
		}
		event.Direction = models.BlockDirection(direction)
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *BlockRepo) appendEvent(ctx context.Context, cardID types.CardID, direction models.BlockDirection, reason, actor string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO block_events (card_id, direction, reason, actor) VALUES (?, ?, ?, ?)`,
		cardID, string(direction), reason, actor,
	)
	if err != nil {
		return fmt.Errorf("failed to record %s event for card %d: %w", direction, cardID, err)
	}
	return nil
}
