package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/types"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board with all of its columns and cards",
		Long: `Delete a board. Its columns, cards and card block history are deleted too.

Examples:
  quadro board delete --id=3
  quadro board delete --id=3 --json
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	boardID, err := cli.PositiveID(cmd, "id")
	if err != nil {
		return formatter.Usage("INVALID_BOARD_ID", err.Error(), "Use 'quadro board list' to see available boards")
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	if err := cliInstance.App.BoardService.DeleteBoard(ctx, types.BoardID(boardID)); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", boardID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"board_id": boardID, "deleted": true})
	}

	fmt.Printf("✓ Board %d deleted\n", boardID)
	return nil
}
