package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/board"
	"github.com/thenoetrevino/quadro/internal/cli/card"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/cli/tutorial"
	"github.com/thenoetrevino/quadro/internal/cli/use"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/logging"
)

// initLogging opens the log file for a command run
var initLogging = logging.Init

// session holds what PersistentPreRunE opens for the lifetime of one Execute
type session struct {
	logFile io.Closer
}

// close releases the log file. cobra skips post-run hooks when RunE fails,
// so this runs from Execute instead.
func (s *session) close() {
	if s.logFile == nil {
		return
	}
	if err := s.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	s.logFile = nil
}

// NewRootCmd builds the quadro command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{})
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadro",
		Short: "Quadro - kanban boards from the terminal",
		Long: `Quadro manages kanban boards from the terminal.

Cards start in a board's initial column and move forward one column at a time
until they are finished or cancelled. Blocked cards stay where they are until
they are unblocked.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
				cfg.DatabasePath = dbPath
			}
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				cfg.LogLevel = level
			}

			// Logging is best effort: a read-only home must not break the CLI
			logFile, err := initLogging(cfg.LogDir, cfg.SlogLevel())
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
				slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
			} else {
				s.close()
				s.logFile = logFile
			}

			styles.Init(cfg.ColorScheme, !styles.IsTerminal(os.Stdout))

			cmd.SetContext(cli.WithConfig(cli.Context(cmd), cfg))
			slog.Debug("command started", "command", cmd.CommandPath(), "database", cfg.DatabasePath)
			return nil
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return &cli.CommandError{Code: cli.ExitUsage, Err: err}
	})

	rootCmd.PersistentFlags().String("db", "", "Database path (overrides QUADRO_DB and the config file)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context, args []string) int {
	s := &session{}
	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	s.close()
	if err == nil {
		return cli.ExitSuccess
	}

	// Command errors were already printed by the output formatter
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
