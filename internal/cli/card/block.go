package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// BlockCmd returns the card block subcommand
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block a card with a reason",
		Long: `Block a card so it cannot be advanced or cancelled until unblocked.

Cards in FINAL or CANCEL columns cannot be blocked. Every block is
recorded in the card history.

Examples:
  quadro card block --id=42 --reason="waiting on design review"
  quadro card block --id=42 --reason="vendor outage" --json
`,
		RunE: runBlock,
	}

	addTransitionFlags(cmd, true)
	cmd.Flags().String("reason", "", "Why the card is blocked (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

// UnblockCmd returns the card unblock subcommand
func UnblockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unblock",
		Short: "Unblock a card with a reason",
		Long: `Lift the block of a card. The reason is recorded in the card history.

Examples:
  quadro card unblock --id=42 --reason="design approved"
`,
		RunE: runUnblock,
	}

	addTransitionFlags(cmd, false)
	cmd.Flags().String("reason", "", "Why the card is unblocked (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func runBlock(cmd *cobra.Command, args []string) error {
	reason, _ := cmd.Flags().GetString("reason")
	return runTransition(cmd, transition{
		verb:       "block",
		needsBoard: true,
		apply: func(ctx context.Context, c *cli.CLI, cardID types.CardID, board *models.Board) error {
			return c.App.CardService.Block(ctx, cardID, reason, board.ColumnSet())
		},
		describe: func(before, after *models.CardDetail) string {
			return fmt.Sprintf("✓ Card %d blocked: %s", after.ID, after.BlockReason)
		},
	})
}

func runUnblock(cmd *cobra.Command, args []string) error {
	reason, _ := cmd.Flags().GetString("reason")
	return runTransition(cmd, transition{
		verb: "unblock",
		apply: func(ctx context.Context, c *cli.CLI, cardID types.CardID, _ *models.Board) error {
			return c.App.CardService.Unblock(ctx, cardID, reason)
		},
		describe: func(before, after *models.CardDetail) string {
			return fmt.Sprintf("✓ Card %d unblocked (was: %s)", after.ID, before.BlockReason)
		},
	})
}
