package card

import (
	"github.com/spf13/cobra"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards and move them through a board",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AdvanceCmd())
	cmd.AddCommand(CancelCmd())
	cmd.AddCommand(BlockCmd())
	cmd.AddCommand(UnblockCmd())
	cmd.AddCommand(HistoryCmd())

	return cmd
}
