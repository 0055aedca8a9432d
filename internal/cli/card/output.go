package card

import (
	"time"

	"github.com/thenoetrevino/quadro/internal/models"
)

func cardJSON(c *models.Card) map[string]any {
	return map[string]any{
		"id":            c.ID,
		"title":         c.Title,
		"description":   c.Description,
		"column_id":     c.ColumnID,
		"blocked":       c.Blocked,
		"block_reason":  c.BlockReason,
		"blocks_amount": c.BlocksAmount,
		"created_at":    c.CreatedAt,
		"updated_at":    c.UpdatedAt,
	}
}

func cardDetailJSON(d *models.CardDetail) map[string]any {
	out := cardJSON(&d.Card)
	out["board_id"] = d.BoardID
	out["column"] = map[string]any{
		"id":   d.ColumnID,
		"name": d.ColumnName,
		"kind": d.ColumnKind,
	}
	return out
}

func blockEventJSON(e *models.BlockEvent) map[string]any {
	return map[string]any{
		"id":         e.ID,
		"direction":  e.Direction,
		"reason":     e.Reason,
		"actor":      e.Actor,
		"created_at": e.CreatedAt,
	}
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
