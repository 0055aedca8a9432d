package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db DBTX
}

// Create inserts a board without columns.
func (r *BoardRepo) Create(ctx context.Context, name string) (*models.Board, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO boards (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get board id: %w", err)
	}

	board := &models.Board{}
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Name, &board.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read created board: %w", err)
	}
	return board, nil
}

// GetByID retrieves a board without its columns.
func (r *BoardRepo) GetByID(ctx context.Context, id types.BoardID) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Name, &board.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("board %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board %d: %w", id, err)
	}
	return board, nil
}

// GetAll retrieves every board ordered by id.
func (r *BoardRepo) GetAll(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM boards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		board := &models.Board{}
		if err := rows.Scan(&board.ID, &board.Name, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return boards, nil
}

// Delete removes a board. Columns, cards and block events go with it.
func (r *BoardRepo) Delete(ctx context.Context, id types.BoardID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete board %d: %w", id, err)
	}
	if err := expectAffected(result); err != nil {
		return fmt.Errorf("board %d: %w", id, err)
	}
	return nil
}

// GetColumnSummaries returns the columns of a board with their card counts.
func (r *BoardRepo) GetColumnSummaries(ctx context.Context, id types.BoardID) ([]*models.ColumnSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT col.id, col.name, col.kind, col.column_order, COUNT(c.id)
		 FROM columns col
		 LEFT JOIN cards c ON c.column_id = col.id
		 WHERE col.board_id = ?
		 GROUP BY col.id
		 ORDER BY col.column_order`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize board %d: %w", id, err)
	}
	defer rows.Close()

	var summaries []*models.ColumnSummary
	for rows.Next() {
		var (
			s    models.ColumnSummary
			kind string
		)
		if err := rows.Scan(&s.ID, &s.Name, &kind, &s.Order, &s.CardCount); err != nil {
			return nil, err
		}
		s.Kind = models.ColumnKind(kind)
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
