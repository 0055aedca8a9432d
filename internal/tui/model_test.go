package tui

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/testutil"
	"github.com/thenoetrevino/quadro/internal/types"
)

// setupSession opens a session on a fresh Todo/Doing/Done/Dropped board
func setupSession(t *testing.T) (Model, *sql.DB, *models.Board) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	board := testutil.CreateTestBoard(t, db, "Launch")
	a := app.New(db, app.WithActor("tui-test"))
	return New(context.Background(), a, *colors.Default(), board.ID), db, board
}

// key builds a key press the way the terminal reports it
func key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg(tea.Key{Text: name, Code: r})
}

// press sends keys in order and returns the model and the last command
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

// answer fills the current prompt field and confirms it
func answer(t *testing.T, m Model, value string) Model {
	t.Helper()
	require.Equal(t, InputMode, m.Mode())
	m.input.SetValue(value)
	m, _ = press(t, m, "enter")
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_StartsOnBoardPicker(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestBoard(t, db, "Launch")
	testutil.CreateTestBoard(t, db, "Hiring")

	m := New(context.Background(), app.New(db), *colors.Default(), 0)

	assert.Equal(t, BoardsMode, m.Mode())
	assert.Nil(t, m.Board())
	assert.Len(t, m.boards.Items(), 2)
}

func TestNew_OpensBoardByID(t *testing.T) {
	m, db, board := setupSession(t)
	testutil.CreateTestCard(t, db, board.Columns[0].ID, "Write notes")

	assert.Equal(t, BoardMode, m.Mode())
	require.NotNil(t, m.Board())
	assert.Equal(t, board.ID, m.Board().ID)
	assert.Len(t, m.columns, 4)

	// Session was built before the card existed
	m, _ = press(t, m, "r")
	assert.Equal(t, "Todo", m.cards.Title)
	assert.Len(t, m.cards.Items(), 1)
}

func TestNew_UnknownBoardStaysOnPicker(t *testing.T) {
	db := testutil.SetupTestDB(t)

	m := New(context.Background(), app.New(db), *colors.Default(), types.BoardID(999))

	assert.Equal(t, BoardsMode, m.Mode())
	assert.Nil(t, m.Board())
	assert.True(t, m.Failed())
}

func TestBoardsMode_EnterOpensSelectedBoard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	board := testutil.CreateTestBoard(t, db, "Launch")
	m := New(context.Background(), app.New(db), *colors.Default(), 0)

	m, _ = press(t, m, "enter")

	assert.Equal(t, BoardMode, m.Mode())
	require.NotNil(t, m.Board())
	assert.Equal(t, board.ID, m.Board().ID)

	m, _ = press(t, m, "esc")
	assert.Equal(t, BoardsMode, m.Mode())
	assert.Nil(t, m.Board())
}

func TestBoardMode_CreateCard(t *testing.T) {
	m, db, board := setupSession(t)

	m, _ = press(t, m, "n")
	require.Equal(t, InputMode, m.Mode())

	// Typed through the input like a user would
	m, _ = press(t, m, "S", "h", "i", "p")
	m, _ = press(t, m, "enter")

	assert.Equal(t, BoardMode, m.Mode())
	assert.False(t, m.Failed(), m.Notice())
	assert.Contains(t, m.Notice(), "Created card #")
	require.Len(t, m.cards.Items(), 1)

	card := m.selectedCard()
	require.NotNil(t, card)
	assert.Equal(t, "Ship", card.Title)
	assert.Equal(t, board.Columns[0].ID, testutil.GetCard(t, db, card.ID).ColumnID)
}

func TestBoardMode_CreateCardEmptyTitleIsShown(t *testing.T) {
	m, _, _ := setupSession(t)

	m, _ = press(t, m, "n")
	m = answer(t, m, "   ")

	assert.Equal(t, BoardMode, m.Mode())
	assert.True(t, m.Failed())
	assert.Contains(t, m.Notice(), "card title cannot be empty")
	assert.Empty(t, m.cards.Items())
}

func TestBoardMode_AdvanceMovesCard(t *testing.T) {
	m, db, board := setupSession(t)
	cardID := testutil.CreateTestCard(t, db, board.Columns[0].ID, "Write notes")
	m, _ = press(t, m, "r")

	m, cmd := press(t, m, "a")

	assert.Nil(t, cmd)
	assert.False(t, m.Failed(), m.Notice())
	assert.Equal(t, fmt.Sprintf("Advanced card #%d", cardID), m.Notice())
	assert.Equal(t, board.Columns[1].ID, testutil.GetCard(t, db, cardID).ColumnID)
	assert.Empty(t, m.cards.Items())

	m, _ = press(t, m, "right")
	assert.Equal(t, "Doing", m.cards.Title)
	assert.Len(t, m.cards.Items(), 1)
}

func TestBoardMode_RejectedTransitionKeepsSessionOpen(t *testing.T) {
	t.Run("blocked card", func(t *testing.T) {
		m, db, board := setupSession(t)
		cardID := testutil.CreateTestCard(t, db, board.Columns[0].ID, "Write notes")
		testutil.SetCardBlocked(t, db, cardID, "waiting on legal")
		m, _ = press(t, m, "r")

		m, cmd := press(t, m, "a")

		assert.False(t, isQuit(cmd))
		assert.Equal(t, BoardMode, m.Mode())
		assert.True(t, m.Failed())
		assert.Contains(t, m.Notice(), "BLOCKED: ")
		assert.Equal(t, board.Columns[0].ID, testutil.GetCard(t, db, cardID).ColumnID)
	})

	t.Run("finished card", func(t *testing.T) {
		m, db, board := setupSession(t)
		cardID := testutil.CreateTestCard(t, db, board.Columns[2].ID, "Shipped")
		m, _ = press(t, m, "right", "right")
		require.Equal(t, "Done", m.cards.Title)

		m, cmd := press(t, m, "a")

		assert.False(t, isQuit(cmd))
		assert.Equal(t, BoardMode, m.Mode())
		assert.True(t, m.Failed())
		assert.Contains(t, m.Notice(), "ALREADY_FINISHED: ")
		assert.Equal(t, board.Columns[2].ID, testutil.GetCard(t, db, cardID).ColumnID)

		// The next key clears the error
		m, _ = press(t, m, "r")
		assert.False(t, m.Failed())
		assert.Empty(t, m.Notice())
	})
}

func TestBoardMode_AdvanceWithoutCards(t *testing.T) {
	m, _, _ := setupSession(t)

	m, _ = press(t, m, "a")

	assert.False(t, m.Failed())
	assert.Equal(t, "No card selected", m.Notice())
}

func TestBoardMode_CancelMovesToCancelColumn(t *testing.T) {
	m, db, board := setupSession(t)
	cardID := testutil.CreateTestCard(t, db, board.Columns[0].ID, "Write notes")
	m, _ = press(t, m, "r")

	m, _ = press(t, m, "x")

	assert.False(t, m.Failed(), m.Notice())
	assert.Equal(t, fmt.Sprintf("Cancelled card #%d", cardID), m.Notice())
	assert.Equal(t, board.Columns[3].ID, testutil.GetCard(t, db, cardID).ColumnID)
}

func TestBoardMode_BlockAndUnblockPrompts(t *testing.T) {
	m, db, board := setupSession(t)
	cardID := testutil.CreateTestCard(t, db, board.Columns[0].ID, "Write notes")
	m, _ = press(t, m, "r")

	m, _ = press(t, m, "b")
	m = answer(t, m, "waiting on QA")

	assert.False(t, m.Failed(), m.Notice())
	assert.True(t, testutil.GetCard(t, db, cardID).Blocked)
	assert.Equal(t, 1, testutil.CountBlockEvents(t, db, cardID))

	// An empty reason is reported and nothing is recorded
	m, _ = press(t, m, "u")
	m = answer(t, m, "")

	assert.Equal(t, BoardMode, m.Mode())
	assert.True(t, m.Failed())
	assert.Contains(t, m.Notice(), "reason cannot be empty")
	assert.True(t, testutil.GetCard(t, db, cardID).Blocked)
	assert.Equal(t, 1, testutil.CountBlockEvents(t, db, cardID))

	m, _ = press(t, m, "u")
	m = answer(t, m, "QA signed off")

	assert.False(t, m.Failed(), m.Notice())
	assert.Equal(t, fmt.Sprintf("Unblocked card #%d", cardID), m.Notice())
	assert.False(t, testutil.GetCard(t, db, cardID).Blocked)
	assert.Equal(t, 2, testutil.CountBlockEvents(t, db, cardID))
}

func TestInputMode_EscapeCancelsPrompt(t *testing.T) {
	m, db, board := setupSession(t)
	cardID := testutil.CreateTestCard(t, db, board.Columns[0].ID, "Write notes")
	m, _ = press(t, m, "r")

	m, _ = press(t, m, "b", "q", "esc")

	assert.Equal(t, BoardMode, m.Mode())
	assert.Equal(t, "Cancelled", m.Notice())
	assert.Nil(t, m.prompt)
	assert.False(t, testutil.GetCard(t, db, cardID).Blocked)
}

func TestCardMode_ShowsDetailAndHistory(t *testing.T) {
	m, db, board := setupSession(t)
	cardID := testutil.CreateTestCard(t, db, board.Columns[0].ID, "Write notes")
	m, _ = press(t, m, "r", "b")
	m = answer(t, m, "waiting on QA")

	m, _ = press(t, m, "enter")

	require.Equal(t, CardMode, m.Mode())
	require.NotNil(t, m.detail)
	assert.Equal(t, cardID, m.detail.ID)
	assert.Len(t, m.history, 1)

	content := fmt.Sprint(m.View().Content)
	assert.Contains(t, content, "Write notes")
	assert.Contains(t, content, "waiting on QA")

	m, _ = press(t, m, "esc")
	assert.Equal(t, BoardMode, m.Mode())
	assert.Nil(t, m.detail)
}

func TestBoardsMode_CreateBoard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	m := New(context.Background(), app.New(db), *colors.Default(), 0)

	m, _ = press(t, m, "n")
	for _, value := range []string{"Roadmap", "Ideas", "Doing, Review", "Shipped", "Dropped"} {
		m = answer(t, m, value)
	}

	assert.Equal(t, BoardsMode, m.Mode())
	assert.False(t, m.Failed(), m.Notice())
	assert.Contains(t, m.Notice(), "Created board #")
	require.Len(t, m.boards.Items(), 1)

	m, _ = press(t, m, "enter")
	require.Equal(t, BoardMode, m.Mode())
	require.Len(t, m.columns, 5)
	assert.Equal(t, "Review", m.columns[2].Name)
	assert.Equal(t, models.ColumnKindCancel, m.columns[4].Kind)
}

func TestBoardsMode_CreateBoardRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	m := New(context.Background(), app.New(db), *colors.Default(), 0)

	m, _ = press(t, m, "n")
	for _, value := range []string{"", "Todo", "", "Done", "Dropped"} {
		m = answer(t, m, value)
	}

	assert.Equal(t, BoardsMode, m.Mode())
	assert.True(t, m.Failed())
	assert.Contains(t, m.Notice(), "name cannot be empty")
	assert.Empty(t, m.boards.Items())
}

func TestBoardsMode_DeleteNeedsConfirmation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestBoard(t, db, "Launch")
	m := New(context.Background(), app.New(db), *colors.Default(), 0)

	m, _ = press(t, m, "d")
	require.Equal(t, DeleteConfirmMode, m.Mode())
	assert.Contains(t, fmt.Sprint(m.View().Content), "Launch")

	m, _ = press(t, m, "n")
	assert.Equal(t, BoardsMode, m.Mode())
	assert.Len(t, m.boards.Items(), 1)

	m, _ = press(t, m, "d", "y")
	assert.Equal(t, BoardsMode, m.Mode())
	assert.Contains(t, m.Notice(), "Deleted board #")
	assert.Empty(t, m.boards.Items())
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := setupSession(t)

	_, cmd := press(t, m, "ctrl+c")
	assert.True(t, isQuit(cmd))

	_, cmd = press(t, m, "q")
	assert.True(t, isQuit(cmd))

	// Inside a prompt q is just a letter
	m, _ = press(t, m, "n")
	m, cmd = press(t, m, "q")
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q", m.input.Value())
}

func TestUpdate_CancelledContextQuits(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := New(ctx, app.New(db), *colors.Default(), 0)
	cancel()

	_, cmd := m.Update(key("r"))

	assert.True(t, isQuit(cmd))
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _, _ := setupSession(t)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestView_BoardMode(t *testing.T) {
	m, _, _ := setupSession(t)

	view := m.View()

	assert.True(t, view.AltScreen)
	content := fmt.Sprint(view.Content)
	assert.Contains(t, content, "Launch")
	for _, name := range []string{"Todo", "Doing", "Done", "Dropped"} {
		assert.Contains(t, content, name)
	}
}
