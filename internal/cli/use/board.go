package use

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/types"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Set board context for current shell session",
		Long: `Set the current board context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(quadro use board 3)              # Use board 3
  eval $(quadro use board --clear)        # Clear board context
  quadro use board --show                 # Show current board

The QUADRO_BOARD environment variable will be set in your current shell
session only. The --board flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseBoard,
	}

	cmd.Flags().Bool("clear", false, "Clear the current board context")
	cmd.Flags().Bool("show", false, "Show the current board context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseBoard(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if showFlag {
		return showCurrentBoard(cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(os.Stderr, "Would clear %s\n", config.EnvBoard)
			return nil
		}
		fmt.Printf("unset %s\n", config.EnvBoard)
		fmt.Fprintf(os.Stderr, "Cleared board context\n")
		return nil
	}

	formatter := &cli.OutputFormatter{}

	if len(args) == 0 {
		return formatter.Usage("NO_BOARD", "board ID required", "Usage: eval $(quadro use board <board-id>)")
	}

	boardID, err := strconv.Atoi(args[0])
	if err != nil || boardID <= 0 {
		return formatter.Usage("INVALID_BOARD_ID", fmt.Sprintf("invalid board ID: %s", args[0]),
			"Use 'quadro board list' to see available boards")
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	board, err := cliInstance.App.BoardService.GetBoard(cli.Context(cmd), types.BoardID(boardID))
	if err != nil {
		return formatter.Fail(err)
	}

	// Only the export line goes to stdout so eval sees nothing else
	if dryRun {
		fmt.Fprintf(os.Stderr, "Would set %s=%d (%s)\n", config.EnvBoard, boardID, board.Name)
		return nil
	}

	fmt.Printf("export %s=%d\n", config.EnvBoard, boardID)
	fmt.Fprintf(os.Stderr, "Now using board %d: %s\n", boardID, board.Name)

	return nil
}

func showCurrentBoard(cmd *cobra.Command) error {
	boardID := cli.ConfigFromContext(cli.Context(cmd)).DefaultBoard
	if boardID == 0 {
		fmt.Println("No board context set")
		fmt.Println("Use 'eval $(quadro use board <board-id>)' to set one")
		return nil
	}

	cliInstance, release, err := cli.Open(cmd, &cli.OutputFormatter{})
	if err != nil {
		return err
	}
	defer release()

	board, err := cliInstance.App.BoardService.GetBoard(cli.Context(cmd), boardID)
	if err != nil {
		fmt.Printf("Current board: %d (board not found)\n", boardID)
		return nil
	}

	fmt.Printf("Current board: %d (%s)\n", boardID, board.Name)
	return nil
}
