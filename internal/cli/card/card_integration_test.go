package card

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalcli "github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/testutil"
	"github.com/thenoetrevino/quadro/internal/testutil/cli"
	"github.com/thenoetrevino/quadro/internal/types"
)

func id(v any) string {
	return fmt.Sprintf("%d", v)
}

func TestCreateCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")

	t.Run("human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Fix login", "--board", id(board.ID),
		})

		require.NoError(t, err)
		assert.Contains(t, output, "Card 'Fix login' created successfully")
		assert.Contains(t, output, "Board: Sprint")
		assert.Contains(t, output, "Column: Todo")
	})

	t.Run("json output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Write docs", "--description", "# Notes", "--board", id(board.ID), "--json",
		})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		card := result["card"].(map[string]any)
		assert.Equal(t, "Write docs", card["title"])
		assert.Equal(t, "# Notes", card["description"])
		assert.Equal(t, float64(board.InitialColumn().ID), card["column_id"])
		assert.Equal(t, false, card["blocked"])
	})

	t.Run("quiet output prints the id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Quiet card", "--board", id(board.ID), "--quiet",
		})
		require.NoError(t, err)

		var cardID int
		_, scanErr := fmt.Sscanf(output, "%d", &cardID)
		require.NoError(t, scanErr)
		assert.Equal(t, "Quiet card", testutil.GetCard(t, db, types.CardID(cardID)).Title)
	})

	t.Run("board from QUADRO_BOARD", func(t *testing.T) {
		cfg := config.Default()
		cfg.DefaultBoard = board.ID

		out, err := cli.ExecuteCLICommandFull(t, context.Background(), app, cfg, CreateCmd(), []string{
			"--title", "Env board", "--json",
		})
		require.NoError(t, err)
		assert.Equal(t, true, cli.ParseJSON(t, out.Stdout)["success"])
	})
}

func TestCreateCard_Negative(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")

	t.Run("no board", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Orphan"})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitUsage, internalcli.ExitCode(err))
	})

	t.Run("blank title", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "   ", "--board", id(board.ID), "--json",
		})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitValidation, internalcli.ExitCode(err))
		result := cli.ParseJSON(t, output)
		assert.Equal(t, false, result["success"])
		assert.Equal(t, "VALIDATION_ERROR", result["error"].(map[string]any)["code"])
	})

	t.Run("unknown board", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Lost", "--board", "999", "--json",
		})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitNotFound, internalcli.ExitCode(err))
		assert.Equal(t, "BOARD_NOT_FOUND", cli.ParseJSON(t, output)["error"].(map[string]any)["code"])
	})

	t.Run("missing title flag", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--board", id(board.ID)})
		assert.Error(t, err)
	})
}

func TestAdvanceCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")
	doing := testutil.ColumnByKind(t, board, models.ColumnKindPending)
	done := testutil.ColumnByKind(t, board, models.ColumnKindFinal)

	t.Run("moves to the next column", func(t *testing.T) {
		cardID := cli.CreateTestCard(t, db, board, "Ship")

		output, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{"--id", id(cardID)})

		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("Card %d moved from 'Todo' to 'Doing'", cardID))
		assert.Equal(t, doing.ID, testutil.GetCard(t, db, cardID).ColumnID)
	})

	t.Run("json reports both columns", func(t *testing.T) {
		cardID := cli.CreateTestCard(t, db, board, "Ship twice")

		_, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{"--id", id(cardID), "--quiet"})
		require.NoError(t, err)

		output, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{
			"--id", id(cardID), "--board", id(board.ID), "--json",
		})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, "Doing", result["from_column"])
		assert.Equal(t, "Done", result["to_column"])
		assert.Equal(t, done.ID, testutil.GetCard(t, db, cardID).ColumnID)
	})

	t.Run("finished card is rejected", func(t *testing.T) {
		cardID := testutil.CreateTestCard(t, db, done.ID, "Already shipped")

		output, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{"--id", id(cardID), "--json"})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitValidation, internalcli.ExitCode(err))
		assert.Equal(t, "ALREADY_FINISHED", cli.ParseJSON(t, output)["error"].(map[string]any)["code"])
	})

	t.Run("blocked card stays put", func(t *testing.T) {
		cardID := cli.CreateTestCard(t, db, board, "Stuck")
		testutil.SetCardBlocked(t, db, cardID, "waiting on review")

		output, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{"--id", id(cardID), "--json"})

		require.Error(t, err)
		errData := cli.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "BLOCKED", errData["code"])
		assert.Contains(t, errData["suggestion"], "quadro card show")
		assert.Equal(t, board.InitialColumn().ID, testutil.GetCard(t, db, cardID).ColumnID)
	})

	t.Run("missing card", func(t *testing.T) {
		out, err := cli.ExecuteCLICommandFull(t, context.Background(), app, config.Default(), AdvanceCmd(), []string{"--id", "9999"})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitNotFound, internalcli.ExitCode(err))
		assert.Contains(t, out.Stderr, "card 9999 not found")
	})

	t.Run("card from another board", func(t *testing.T) {
		other := cli.CreateTestBoard(t, db, "Other")
		cardID := cli.CreateTestCard(t, db, board, "Misplaced")

		output, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{
			"--id", id(cardID), "--board", id(other.ID), "--json",
		})

		require.Error(t, err)
		assert.Equal(t, "WRONG_BOARD", cli.ParseJSON(t, output)["error"].(map[string]any)["code"])
	})

	t.Run("non-positive id", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{"--id", "0"})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitUsage, internalcli.ExitCode(err))
	})
}

func TestCancelCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")
	dropped := board.CancelColumn()

	cardID := cli.CreateTestCard(t, db, board, "Scrap")

	output, err := cli.ExecuteCLICommand(t, app, CancelCmd(), []string{"--id", id(cardID)})
	require.NoError(t, err)
	assert.Contains(t, output, fmt.Sprintf("Card %d cancelled", cardID))
	assert.Equal(t, dropped.ID, testutil.GetCard(t, db, cardID).ColumnID)

	output, err = cli.ExecuteCLICommand(t, app, CancelCmd(), []string{"--id", id(cardID), "--json"})
	require.Error(t, err)
	assert.Equal(t, "CANCELLED", cli.ParseJSON(t, output)["error"].(map[string]any)["code"])
}

func TestBlockUnblockCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")
	cardID := cli.CreateTestCard(t, db, board, "Integrate payments")

	output, err := cli.ExecuteCLICommand(t, app, BlockCmd(), []string{
		"--id", id(cardID), "--reason", "waiting on API keys",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "blocked: waiting on API keys")

	card := testutil.GetCard(t, db, cardID)
	assert.True(t, card.Blocked)
	assert.Equal(t, 1, card.BlocksAmount)

	output, err = cli.ExecuteCLICommand(t, app, BlockCmd(), []string{
		"--id", id(cardID), "--reason", "again", "--json",
	})
	require.Error(t, err)
	assert.Equal(t, "BLOCKED", cli.ParseJSON(t, output)["error"].(map[string]any)["code"])

	output, err = cli.ExecuteCLICommand(t, app, UnblockCmd(), []string{
		"--id", id(cardID), "--reason", "keys arrived", "--json",
	})
	require.NoError(t, err)
	result := cli.ParseJSON(t, output)
	assert.Equal(t, false, result["blocked"])
	assert.Equal(t, float64(1), result["blocks_amount"])

	output, err = cli.ExecuteCLICommand(t, app, HistoryCmd(), []string{"--id", id(cardID), "--json"})
	require.NoError(t, err)
	history := cli.ParseJSON(t, output)
	assert.Equal(t, float64(2), history["count"])
	events := history["events"].([]any)
	first := events[0].(map[string]any)
	second := events[1].(map[string]any)
	assert.Equal(t, "block", first["direction"])
	assert.Equal(t, "waiting on API keys", first["reason"])
	assert.Equal(t, "cli-test", first["actor"])
	assert.Equal(t, "unblock", second["direction"])
	assert.Equal(t, "keys arrived", second["reason"])
}

func TestBlockCard_Negative(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")
	done := testutil.ColumnByKind(t, board, models.ColumnKindFinal)

	t.Run("finished card cannot be blocked", func(t *testing.T) {
		cardID := testutil.CreateTestCard(t, db, done.ID, "Shipped")

		output, err := cli.ExecuteCLICommand(t, app, BlockCmd(), []string{
			"--id", id(cardID), "--reason", "too late", "--json",
		})

		require.Error(t, err)
		assert.Equal(t, "INVALID_STATE", cli.ParseJSON(t, output)["error"].(map[string]any)["code"])
		assert.Equal(t, 0, testutil.CountBlockEvents(t, db, cardID))
	})

	t.Run("blank reason", func(t *testing.T) {
		cardID := cli.CreateTestCard(t, db, board, "Needs reason")

		_, err := cli.ExecuteCLICommand(t, app, BlockCmd(), []string{"--id", id(cardID), "--reason", " "})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitValidation, internalcli.ExitCode(err))
	})

	t.Run("unblock a card that is not blocked", func(t *testing.T) {
		cardID := cli.CreateTestCard(t, db, board, "Free")

		output, err := cli.ExecuteCLICommand(t, app, UnblockCmd(), []string{
			"--id", id(cardID), "--reason", "nothing to lift", "--json",
		})

		require.Error(t, err)
		assert.Equal(t, "BLOCKED", cli.ParseJSON(t, output)["error"].(map[string]any)["code"])
	})
}

func TestShowCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")
	cardID := cli.CreateTestCard(t, db, board, "Document API")
	testutil.SetCardBlocked(t, db, cardID, "waiting on design review")

	t.Run("human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{id(cardID)})

		require.NoError(t, err)
		assert.Contains(t, output, "Document API")
		assert.Contains(t, output, "BLOCKED")
		assert.Contains(t, output, "Column: Todo")
		assert.Contains(t, output, "Blocked: waiting on design review")
		assert.Contains(t, output, "No description")
	})

	t.Run("json output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", id(cardID), "--json"})
		require.NoError(t, err)

		card := cli.ParseJSON(t, output)["card"].(map[string]any)
		assert.Equal(t, float64(board.ID), card["board_id"])
		assert.Equal(t, true, card["blocked"])
		assert.Equal(t, "waiting on design review", card["block_reason"])
		column := card["column"].(map[string]any)
		assert.Equal(t, "Todo", column["name"])
		assert.Equal(t, "INITIAL", column["kind"])
	})

	t.Run("invalid positional id", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"abc"})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitUsage, internalcli.ExitCode(err))
	})

	t.Run("missing card", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"4242"})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitNotFound, internalcli.ExitCode(err))
	})
}

func TestListCards(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")
	first := cli.CreateTestCard(t, db, board, "First")
	second := cli.CreateTestCard(t, db, board, "Second")
	testutil.SetCardBlocked(t, db, second, "flaky CI")

	column := id(board.InitialColumn().ID)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", column})
	require.NoError(t, err)
	assert.Contains(t, output, "Found 2 cards")
	assert.Contains(t, output, fmt.Sprintf("[%d] First", first))
	assert.Contains(t, output, "flaky CI")

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", column, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n%d\n", first, second), output)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{
		"--column", id(board.CancelColumn().ID), "--json",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), cli.ParseJSON(t, output)["count"])

	t.Run("unknown column", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", "9999", "--json"})

		require.Error(t, err)
		assert.Equal(t, internalcli.ExitNotFound, internalcli.ExitCode(err))
		errData := cli.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", errData["code"])
		assert.Equal(t, "column 9999 not found", errData["message"])
	})
}

func TestHistory_NeverBlocked(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	board := cli.CreateTestBoard(t, db, "Sprint")
	cardID := cli.CreateTestCard(t, db, board, "Smooth")

	output, err := cli.ExecuteCLICommand(t, app, HistoryCmd(), []string{"--id", id(cardID)})

	require.NoError(t, err)
	assert.Contains(t, output, "has never been blocked")
}

func TestCardCmd_Subcommands(t *testing.T) {
	cmd := CardCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{
		"create", "show", "list", "advance", "cancel", "block", "unblock", "history",
	}, names)
}
