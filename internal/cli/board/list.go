package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards.

Examples:
  quadro board list
  quadro board list --json
  BOARD_IDS=$(quadro board list --quiet)
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	boards, err := cliInstance.App.BoardService.GetAllBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, b := range boards {
			fmt.Printf("%d\n", b.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]map[string]any, 0, len(boards))
		for _, b := range boards {
			items = append(items, map[string]any{
				"id":         b.ID,
				"name":       b.Name,
				"created_at": b.CreatedAt,
			})
		}
		return formatter.JSONSuccess(map[string]any{
			"boards": items,
			"count":  len(boards),
		})
	}

	if len(boards) == 0 {
		fmt.Println("No boards found")
		return nil
	}

	fmt.Printf("Found %d boards:\n\n", len(boards))
	for _, b := range boards {
		fmt.Printf("  [%d] %s\n", b.ID, b.Name)
	}

	return nil
}
