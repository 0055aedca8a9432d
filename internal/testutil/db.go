package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/quadro/internal/database"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
	_ "modernc.org/sqlite"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestBoard creates a board laid out as
// [Todo INITIAL 0, Doing PENDING 1, Done FINAL 2, Dropped CANCEL 3]
func CreateTestBoard(t *testing.T, db *sql.DB, name string) *models.Board {
	t.Helper()
	return CreateTestBoardWithColumns(t, db, name, []models.Column{
		{Name: "Todo", Kind: models.ColumnKindInitial, Order: 0},
		{Name: "Doing", Kind: models.ColumnKindPending, Order: 1},
		{Name: "Done", Kind: models.ColumnKindFinal, Order: 2},
		{Name: "Dropped", Kind: models.ColumnKindCancel, Order: 3},
	})
}

// CreateTestBoardWithColumns creates a board with an arbitrary column layout.
// No layout validation is applied, so tests can build malformed boards.
func CreateTestBoardWithColumns(t *testing.T, db *sql.DB, name string, columns []models.Column) *models.Board {
	t.Helper()
	ctx := context.Background()

	result, err := db.ExecContext(ctx, "INSERT INTO boards (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	boardID, _ := result.LastInsertId()

	board := &models.Board{ID: types.BoardID(boardID), Name: name}
	for _, col := range columns {
		result, err := db.ExecContext(ctx,
			"INSERT INTO columns (board_id, name, kind, column_order) VALUES (?, ?, ?, ?)",
			boardID, col.Name, string(col.Kind), col.Order)
		if err != nil {
			t.Fatalf("Failed to create test column %q: %v", col.Name, err)
		}
		colID, _ := result.LastInsertId()
		board.Columns = append(board.Columns, &models.Column{
			ID:      types.ColumnID(colID),
			BoardID: board.ID,
			Name:    col.Name,
			Kind:    col.Kind,
			Order:   col.Order,
		})
	}

	return board
}

// CreateTestCard inserts a card directly into a column and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID types.ColumnID, title string) types.CardID {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO cards (title, description, column_id) VALUES (?, ?, ?)",
		title, "", columnID)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	id, _ := result.LastInsertId()
	return types.CardID(id)
}

// SetCardBlocked forces the blocked flag without touching the ledger
func SetCardBlocked(t *testing.T, db *sql.DB, cardID types.CardID, reason string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"UPDATE cards SET blocked = 1, block_reason = ?, blocks_amount = blocks_amount + 1 WHERE id = ?",
		reason, cardID)
	if err != nil {
		t.Fatalf("Failed to block test card: %v", err)
	}
}

// GetCard reads the full stored state of a card
func GetCard(t *testing.T, db *sql.DB, cardID types.CardID) *models.Card {
	t.Helper()
	card, err := database.NewRepository(db).Cards.FindByID(context.Background(), cardID)
	if err != nil {
		t.Fatalf("Failed to read card %d: %v", cardID, err)
	}
	return card
}

// CountBlockEvents returns the number of ledger entries of a card
func CountBlockEvents(t *testing.T, db *sql.DB, cardID types.CardID) int {
	t.Helper()
	var count int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM block_events WHERE card_id = ?", cardID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count block events: %v", err)
	}
	return count
}

// ColumnByKind returns the first column of the given kind on a test board
func ColumnByKind(t *testing.T, board *models.Board, kind models.ColumnKind) *models.Column {
	t.Helper()
	for _, c := range board.Columns {
		if c.Kind == kind {
			return c
		}
	}
	t.Fatalf("board %d has no %s column", board.ID, kind)
	return nil
}
