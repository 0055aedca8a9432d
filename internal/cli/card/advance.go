package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// AdvanceCmd returns the card advance subcommand
func AdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Move a card to the next column of its board",
		Long: `Move a card one column forward, following column order.

Blocked, finished and cancelled cards cannot be advanced.

Examples:
  quadro card advance --id=42
  quadro card advance --id=42 --board=1 --json
`,
		RunE: runAdvance,
	}

	addTransitionFlags(cmd, true)

	return cmd
}

func runAdvance(cmd *cobra.Command, args []string) error {
	return runTransition(cmd, transition{
		verb:       "advance",
		needsBoard: true,
		apply: func(ctx context.Context, c *cli.CLI, cardID types.CardID, board *models.Board) error {
			return c.App.CardService.Advance(ctx, cardID, board.ColumnSet())
		},
		describe: func(before, after *models.CardDetail) string {
			return fmt.Sprintf("✓ Card %d moved from '%s' to '%s'", after.ID, before.ColumnName, after.ColumnName)
		},
	})
}
