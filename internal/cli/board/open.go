package board

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/tui"
)

// ErrNoTerminal is returned when the interactive session has no terminal to draw on
var ErrNoTerminal = errors.New("board open needs an interactive terminal")

// OpenCmd returns the board open subcommand
func OpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Work on boards interactively",
		Long: `Open an interactive session to pick, create and delete boards, and to
create, advance, cancel, block and unblock cards.

Rejected moves are shown on the status line; the session keeps running.

Examples:
  quadro board open
  quadro board open --id=1
`,
		RunE: runOpen,
	}

	cmd.Flags().Int("id", 0, "Board to open (uses QUADRO_BOARD env var, else starts on the board list)")

	return cmd
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	boardID, err := boardFromFlags(cmd)
	if err != nil && !errors.Is(err, cli.ErrNoBoard) {
		return formatter.Usage("INVALID_BOARD_ID", err.Error(), "Usage: quadro board open --id=<board-id>")
	}

	if !styles.IsTerminal(os.Stdin) || !styles.IsTerminal(os.Stdout) {
		return formatter.Usage("NO_TERMINAL", ErrNoTerminal.Error(),
			"Use 'quadro card' and 'quadro board' subcommands in scripts")
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	model := tui.New(ctx, cliInstance.App, cliInstance.Config.ColorScheme, boardID)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return formatter.FailWith("TUI_ERROR", cli.ExitError, fmt.Errorf("interactive session failed: %w", err))
	}
	return nil
}
