package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// CardRepo handles pure data access for cards.
// No business logic, no validation - just database operations.
type CardRepo struct {
	db DBTX
}

const cardColumns = `id, title, description, column_id, blocked, block_reason, blocks_amount, created_at, updated_at`

// FindByID retrieves a card by ID. Returns a wrapped ErrNotFound when absent.
func (r *CardRepo) FindByID(ctx context.Context, id types.CardID) (*models.Card, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = ?`, id)
	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, err)
	}
	return card, nil
}

// Insert creates a new card and returns it as stored.
func (r *CardRepo) Insert(ctx context.Context, card *models.Card) (*models.Card, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (title, description, column_id) VALUES (?, ?, ?)`,
		card.Title, stringToNullString(card.Description), card.ColumnID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get card id: %w", err)
	}

	return r.FindByID(ctx, types.CardID(id))
}

// MoveToColumn points the card at a different column.
func (r *CardRepo) MoveToColumn(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards SET column_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		columnID, cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to move card %d: %w", cardID, err)
	}
	if err := expectAffected(result); err != nil {
		return fmt.Errorf("card %d: %w", cardID, err)
	}
	return nil
}

// GetDetail retrieves a card together with its column and board.
func (r *CardRepo) GetDetail(ctx context.Context, id types.CardID) (*models.CardDetail, error) {
	var (
		detail      models.CardDetail
		description sql.NullString
		reason      sql.NullString
		kind        string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT c.id, c.title, c.description, c.column_id, c.blocked, c.block_reason,
		        c.blocks_amount, c.created_at, c.updated_at,
		        col.board_id, col.name, col.kind
		 FROM cards c
		 INNER JOIN columns col ON col.id = c.column_id
		 WHERE c.id = ?`,
		id,
	).Scan(
		&detail.ID, &detail.Title, &description, &detail.ColumnID, &detail.Blocked, &reason,
		&detail.BlocksAmount, &detail.CreatedAt, &detail.UpdatedAt,
		&detail.BoardID, &detail.ColumnName, &kind,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card detail %d: %w", id, err)
	}
	detail.Description = nullStringToString(description)
	detail.BlockReason = nullStringToString(reason)
	detail.ColumnKind = models.ColumnKind(kind)
	return &detail, nil
}

// ListByColumn retrieves all cards of a column, oldest first.
func (r *CardRepo) ListByColumn(ctx context.Context, columnID types.ColumnID) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE column_id = ? ORDER BY id`,
		columnID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards of column %d: %w", columnID, err)
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// CountByColumn returns the number of cards in a column.
func (r *CardRepo) CountByColumn(ctx context.Context, columnID types.ColumnID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE column_id = ?`, columnID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards of column %d: %w", columnID, err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*models.Card, error) {
	var (
		card        models.Card
		description sql.NullString
		reason      sql.NullString
	)
	if err := row.Scan(
		&card.ID, &card.Title, &description, &card.ColumnID, &card.Blocked, &reason,
		&card.BlocksAmount, &card.CreatedAt, &card.UpdatedAt,
	); err != nil {
		return nil, err
	}
	card.Description = nullStringToString(description)
	card.BlockReason = nullStringToString(reason)
	return &card, nil
}
