package card

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/types"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cards of a column",
		Long: `List every card sitting in a column, oldest first.

Examples:
  quadro card list --column=2
  quadro card list --column=2 --json
  CARD_IDS=$(quadro card list --column=2 --quiet)
`,
		RunE: runList,
	}

	cmd.Flags().Int("column", 0, "Column ID (required)")
	_ = cmd.MarkFlagRequired("column")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	columnID, err := cli.PositiveID(cmd, "column")
	if err != nil {
		return formatter.Usage("INVALID_COLUMN_ID", err.Error(),
			"Use 'quadro board show --id=<board-id>' to see column IDs")
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	cards, err := cliInstance.App.CardService.ListCardsByColumn(ctx, types.ColumnID(columnID))
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, c := range cards {
			fmt.Printf("%d\n", c.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]map[string]any, 0, len(cards))
		for _, c := range cards {
			items = append(items, cardJSON(c))
		}
		return formatter.JSONSuccess(map[string]any{
			"cards": items,
			"count": len(cards),
		})
	}

	if len(cards) == 0 {
		fmt.Println("No cards found")
		return nil
	}

	fmt.Printf("Found %d cards:\n\n", len(cards))
	for _, c := range cards {
		line := fmt.Sprintf("  [%d] %s", c.ID, c.Title)
		if c.Blocked {
			line += fmt.Sprintf(" %s %s", styles.RenderBlocked(), styles.SubtitleStyle.Render(c.BlockReason))
		}
		fmt.Println(line)
	}

	return nil
}
