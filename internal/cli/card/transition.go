package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// transition describes one card lifecycle command
type transition struct {
	verb string
	// needsBoard resolves the board's column metadata before apply runs
	needsBoard bool
	apply      func(ctx context.Context, c *cli.CLI, cardID types.CardID, board *models.Board) error
	// describe renders the human-readable success line
	describe func(before, after *models.CardDetail) string
}

func addTransitionFlags(cmd *cobra.Command, withBoard bool) {
	cmd.Flags().Int("id", 0, "Card ID (required)")
	_ = cmd.MarkFlagRequired("id")

	if withBoard {
		cmd.Flags().Int("board", 0, "Board the card is expected on (defaults to QUADRO_BOARD, then the card's own board)")
	}

	cli.AddOutputFlags(cmd)
}

func runTransition(cmd *cobra.Command, t transition) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	rawID, err := cli.PositiveID(cmd, "id")
	if err != nil {
		return formatter.Usage("INVALID_CARD_ID", err.Error(),
			fmt.Sprintf("Usage: quadro card %s --id=<card-id>", t.verb))
	}
	cardID := types.CardID(rawID)

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	var board *models.Board
	if t.needsBoard {
		board, err = cli.ResolveBoard(ctx, cmd, cliInstance, cardID)
		if err != nil {
			return formatter.Fail(err)
		}
	}

	before, err := cliInstance.App.CardService.GetCardDetail(ctx, cardID)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := t.apply(ctx, cliInstance, cardID, board); err != nil {
		return formatter.Fail(err)
	}

	after, err := cliInstance.App.CardService.GetCardDetail(ctx, cardID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", cardID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"card_id":       cardID,
			"from_column":   before.ColumnName,
			"to_column":     after.ColumnName,
			"blocked":       after.Blocked,
			"block_reason":  after.BlockReason,
			"blocks_amount": after.BlocksAmount,
		})
	}

	fmt.Println(t.describe(before, after))
	return nil
}
