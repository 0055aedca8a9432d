package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/testutil"
	"github.com/thenoetrevino/quadro/internal/types"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This lives in its own package so service tests can import testutil
// without pulling in the app container.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db, app.WithActor("cli-test"))
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests.
// The board is laid out as Todo, Doing, Done, Dropped.
func CreateTestBoard(t *testing.T, db *sql.DB, name string) *models.Board {
	t.Helper()
	return testutil.CreateTestBoard(t, db, name)
}

// CreateTestCard creates a card in the board's INITIAL column and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, board *models.Board, title string) types.CardID {
	t.Helper()
	return testutil.CreateTestCard(t, db, board.InitialColumn().ID, title)
}
