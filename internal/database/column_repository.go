package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db DBTX
}

// Create inserts a column at the given order of a board.
func (r *ColumnRepo) Create(ctx context.Context, boardID types.BoardID, name string, kind models.ColumnKind, order int) (*models.Column, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (board_id, name, kind, column_order) VALUES (?, ?, ?, ?)`,
		boardID, name, string(kind), order,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create column %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get column id: %w", err)
	}

	return &models.Column{
		ID:      types.ColumnID(id),
		BoardID: boardID,
		Name:    name,
		Kind:    kind,
		Order:   order,
	}, nil
}

// GetByBoard retrieves the columns of a board sorted by order.
func (r *ColumnRepo) GetByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name, kind, column_order
		 FROM columns
		 WHERE board_id = ?
		 ORDER BY column_order`,
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns of board %d: %w", boardID, err)
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		column, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}

// GetByID retrieves a single column.
func (r *ColumnRepo) GetByID(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, board_id, name, kind, column_order FROM columns WHERE id = ?`, id,
	)
	column, err := scanColumn(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("column %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get column %d: %w", id, err)
	}
	return column, nil
}

func scanColumn(row rowScanner) (*models.Column, error) {
	var (
		column models.Column
		kind   string
	)
	if err := row.Scan(&column.ID, &column.BoardID, &column.Name, &kind, &column.Order); err != nil {
		return nil, err
	}
	column.Kind = models.ColumnKind(kind)
	return &column, nil
}
