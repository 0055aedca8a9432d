package card

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// HistoryCmd returns the card history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the block and unblock history of a card",
		Long: `Show every block and unblock of a card in the order they happened,
with the reason and who did it.

Examples:
  quadro card history --id=42
  quadro card history --id=42 --json
`,
		RunE: runHistory,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	cardID, err := cli.PositiveID(cmd, "id")
	if err != nil {
		return formatter.Usage("INVALID_CARD_ID", err.Error(), "Usage: quadro card history --id=<card-id>")
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	events, err := cliInstance.App.CardService.GetBlockHistory(ctx, types.CardID(cardID))
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, e := range events {
			fmt.Printf("%d\n", e.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]map[string]any, 0, len(events))
		for _, e := range events {
			items = append(items, blockEventJSON(e))
		}
		return formatter.JSONSuccess(map[string]any{
			"card_id": cardID,
			"events":  items,
			"count":   len(events),
		})
	}

	if len(events) == 0 {
		fmt.Printf("Card %d has never been blocked\n", cardID)
		return nil
	}

	fmt.Printf("Block history of card %d:\n\n", cardID)
	for _, e := range events {
		direction := styles.SuccessStyle.Render("unblocked")
		if e.Direction == models.BlockDirectionBlock {
			direction = styles.RenderBlocked()
		}
		fmt.Printf("  %s  %s by %s: %s\n",
			styles.SubtitleStyle.Render(formatTime(e.CreatedAt)), direction, e.Actor, e.Reason)
	}

	return nil
}
