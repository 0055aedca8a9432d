package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board with its columns",
		Long: `Create a board. Columns are laid out in this order:
the initial column, every pending column, the final column, then the cancel column.

Examples:
  # Minimal board: Todo -> Done, with Dropped for cancelled cards
  quadro board create --name="Sprint 12" --initial=Todo --final=Done --cancel=Dropped

  # With work-in-progress columns
  quadro board create --name=Release --initial=Backlog \
    --pending=Doing --pending=Review --final=Shipped --cancel=Dropped

  # Capture the new board for card commands
  export QUADRO_BOARD=$(quadro board create --name=Ops --initial=New --final=Closed --cancel=Rejected --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Board name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("initial", "", "Name of the column new cards start in (required)")
	_ = cmd.MarkFlagRequired("initial")
	cmd.Flags().StringArray("pending", nil, "Name of an in-progress column (repeatable, in order)")
	cmd.Flags().String("final", "", "Name of the column finished cards end in (required)")
	_ = cmd.MarkFlagRequired("final")
	cmd.Flags().String("cancel", "", "Name of the column cancelled cards move to (required)")
	_ = cmd.MarkFlagRequired("cancel")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	initial, _ := cmd.Flags().GetString("initial")
	pending, _ := cmd.Flags().GetStringArray("pending")
	final, _ := cmd.Flags().GetString("final")
	cancel, _ := cmd.Flags().GetString("cancel")

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
		Name:           name,
		InitialColumn:  initial,
		PendingColumns: pending,
		FinalColumn:    final,
		CancelColumn:   cancel,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", board.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"board": boardJSON(board)})
	}

	fmt.Printf("✓ Board '%s' created successfully (ID: %d)\n", board.Name, board.ID)
	for _, c := range board.Columns {
		fmt.Printf("  %d. %s %s (ID: %d)\n", c.Order+1, c.Name, styles.RenderKind(c.Kind), c.ID)
	}

	return nil
}
