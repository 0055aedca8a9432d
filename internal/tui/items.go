package tui

import (
	"fmt"

	"charm.land/bubbles/v2/list"
	"github.com/thenoetrevino/quadro/internal/models"
)

// boardItem adapts a board to the bubbles list
type boardItem struct {
	board *models.Board
}

func (i boardItem) Title() string       { return i.board.Name }
func (i boardItem) Description() string { return fmt.Sprintf("Board #%d", i.board.ID) }
func (i boardItem) FilterValue() string { return i.board.Name }

// cardItem adapts a card to the bubbles list
type cardItem struct {
	card *models.Card
}

func (i cardItem) Title() string {
	return fmt.Sprintf("#%d %s", i.card.ID, i.card.Title)
}

func (i cardItem) Description() string {
	if i.card.Blocked {
		return "BLOCKED: " + i.card.BlockReason
	}
	if i.card.BlocksAmount > 0 {
		return fmt.Sprintf("blocked %d time(s) before", i.card.BlocksAmount)
	}
	return "ready"
}

func (i cardItem) FilterValue() string { return i.card.Title }

func boardItems(boards []*models.Board) []list.Item {
	items := make([]list.Item, 0, len(boards))
	for _, b := range boards {
		items = append(items, boardItem{board: b})
	}
	return items
}

func cardItems(cards []*models.Card) []list.Item {
	items := make([]list.Item, 0, len(cards))
	for _, c := range cards {
		items = append(items, cardItem{card: c})
	}
	return items
}
