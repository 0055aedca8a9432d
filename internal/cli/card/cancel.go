package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
	"github.com/thenoetrevino/quadro/internal/types"
)

// CancelCmd returns the card cancel subcommand
func CancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Move a card to the cancel column of its board",
		Long: `Cancel a card by moving it to its board's CANCEL column.

The same rules as advance apply: blocked, finished and already cancelled
cards are rejected.

Examples:
  quadro card cancel --id=42
  quadro card cancel --id=42 --quiet
`,
		RunE: runCancel,
	}

	addTransitionFlags(cmd, true)

	return cmd
}

func runCancel(cmd *cobra.Command, args []string) error {
	return runTransition(cmd, transition{
		verb:       "cancel",
		needsBoard: true,
		apply: func(ctx context.Context, c *cli.CLI, cardID types.CardID, board *models.Board) error {
			column := board.CancelColumn()
			if column == nil {
				return fmt.Errorf("board %d has no %s column: %w", board.ID, models.ColumnKindCancel, cardservice.ErrInvalidState)
			}
			return c.App.CardService.Cancel(ctx, cardID, column.ID, board.ColumnSet())
		},
		describe: func(before, after *models.CardDetail) string {
			return fmt.Sprintf("✓ Card %d cancelled (moved from '%s' to '%s')", after.ID, before.ColumnName, after.ColumnName)
		},
	})
}
