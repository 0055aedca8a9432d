package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board's columns and how many cards each holds",
		Long: `Show a board overview: every column in order with its kind and card count.

Examples:
  quadro board show --id=1
  quadro board show --id=1 --json
`,
		RunE: runShow,
	}

	cmd.Flags().Int("id", 0, "Board ID (uses QUADRO_BOARD env var if not specified)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	boardID, err := boardFromFlags(cmd)
	if err != nil {
		return formatter.Usage("NO_BOARD", err.Error(), "Usage: quadro board show --id=<board-id>")
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	detail, err := cliInstance.App.BoardService.GetBoardDetail(ctx, boardID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", detail.ID)
		return nil
	}

	if formatter.JSON {
		columns := make([]map[string]any, 0, len(detail.Columns))
		for _, c := range detail.Columns {
			columns = append(columns, map[string]any{
				"id":         c.ID,
				"name":       c.Name,
				"kind":       c.Kind,
				"order":      c.Order,
				"card_count": c.CardCount,
			})
		}
		return formatter.JSONSuccess(map[string]any{
			"board": map[string]any{
				"id":      detail.ID,
				"name":    detail.Name,
				"columns": columns,
			},
		})
	}

	fmt.Println(renderDetail(detail))
	return nil
}

// boardFromFlags reads --id, falling back to QUADRO_BOARD
func boardFromFlags(cmd *cobra.Command) (types.BoardID, error) {
	if cmd.Flags().Changed("id") {
		id, err := cli.PositiveID(cmd, "id")
		return types.BoardID(id), err
	}
	if id := cli.ConfigFromContext(cli.Context(cmd)).DefaultBoard; id > 0 {
		return id, nil
	}
	return 0, cli.ErrNoBoard
}

func renderDetail(d *models.BoardDetail) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(d.Name))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Board #%d", d.ID)))
	content.WriteString("\n")

	for _, c := range d.Columns {
		fmt.Fprintf(&content, "\n%s %s %s",
			styles.LabelStyle.Render(fmt.Sprintf("%d.", c.Order+1)),
			styles.ValueStyle.Render(fmt.Sprintf("%s (ID: %d)", c.Name, c.ID)),
			styles.RenderKind(c.Kind))
		content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("  %d cards", c.CardCount)))
	}

	return styles.RenderCard(content.String())
}
