package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards and their columns",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(OpenCmd())

	return cmd
}

func columnJSON(c *models.Column) map[string]any {
	return map[string]any{
		"id":    c.ID,
		"name":  c.Name,
		"kind":  c.Kind,
		"order": c.Order,
	}
}

func boardJSON(b *models.Board) map[string]any {
	columns := make([]map[string]any, 0, len(b.Columns))
	for _, c := range b.Columns {
		columns = append(columns, columnJSON(c))
	}
	return map[string]any{
		"id":         b.ID,
		"name":       b.Name,
		"columns":    columns,
		"created_at": b.CreatedAt,
	}
}
