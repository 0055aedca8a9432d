package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS boards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS columns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		board_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('INITIAL', 'PENDING', 'FINAL', 'CANCEL')),
		column_order INTEGER NOT NULL,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
		UNIQUE (board_id, column_order)
	)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		column_id INTEGER NOT NULL,
		blocked BOOLEAN NOT NULL DEFAULT 0,
		block_reason TEXT,
		blocks_amount INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS block_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		card_id INTEGER NOT NULL,
		direction TEXT NOT NULL CHECK (direction IN ('block', 'unblock')),
		reason TEXT NOT NULL,
		actor TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_columns_board ON columns(board_id, column_order)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_column ON cards(column_id)`,
	`CREATE INDEX IF NOT EXISTS idx_block_events_card ON block_events(card_id, id)`,
}

// Migrate creates the database schema. It is safe to run on every start.
func Migrate(ctx context.Context, db DBTX) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
