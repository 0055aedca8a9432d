// Package use holds all cli commands related to setting contextual information
// e.g., quadro use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command sets context that applies to subsequent commands,
eliminating the need to repeatedly specify flags.

Examples:
  eval $(quadro use board 3)       # Use board 3
  eval $(quadro use board --clear) # Clear board context
  quadro use board --show          # Show current board`,
	}

	cmd.AddCommand(BoardCmd())

	return cmd
}
