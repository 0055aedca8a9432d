package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
	"github.com/thenoetrevino/quadro/internal/types"
)

// ============================================================================
// BOARDS
// ============================================================================

func (m *Model) loadBoards() {
	boards, err := m.app.BoardService.GetAllBoards(m.ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.boards.SetItems(boardItems(boards))
}

// openBoard loads the board and shows the cards of its first column
func (m *Model) openBoard(id types.BoardID) {
	board, err := m.app.BoardService.GetBoard(m.ctx, id)
	if err != nil {
		m.fail(err)
		return
	}

	m.board = board
	m.column = 0
	m.mode = BoardMode
	m.cards.Select(0)
	m.refreshBoard()
}

// refreshBoard re-reads column counts and the cards of the current column
func (m *Model) refreshBoard() {
	if m.board == nil {
		return
	}

	detail, err := m.app.BoardService.GetBoardDetail(m.ctx, m.board.ID)
	if err != nil {
		m.fail(err)
		return
	}
	m.columns = detail.Columns
	m.column = min(m.column, max(len(m.columns)-1, 0))

	column := m.currentColumn()
	if column == nil {
		m.cards.SetItems(nil)
		return
	}

	cards, err := m.app.CardService.ListCardsByColumn(m.ctx, column.ID)
	if err != nil {
		m.fail(err)
		return
	}

	index := m.cards.Index()
	m.cards.Title = column.Name
	m.cards.SetItems(cardItems(cards))
	if len(cards) > 0 {
		m.cards.Select(min(index, len(cards)-1))
	}
}

func (m *Model) closeBoard() {
	m.board = nil
	m.columns = nil
	m.column = 0
	m.mode = BoardsMode
	m.cards.SetItems(nil)
	m.loadBoards()
}

func (m *Model) moveColumn(delta int) {
	next := m.column + delta
	if next < 0 || next >= len(m.columns) {
		return
	}
	m.column = next
	m.cards.Select(0)
	m.refreshBoard()
}

func (m *Model) newBoardPrompt() tea.Cmd {
	return m.startPrompt(&prompt{
		title: "New board",
		fields: []promptField{
			{label: "Board name", placeholder: "Launch"},
			{label: "Initial column", placeholder: "Todo"},
			{label: "Pending columns (comma separated, may be empty)", placeholder: "Doing, Review"},
			{label: "Final column", placeholder: "Done"},
			{label: "Cancel column", placeholder: "Dropped"},
		},
		submit: func(m *Model, answers []string) error {
			board, err := m.app.BoardService.CreateBoard(m.ctx, boardservice.CreateBoardRequest{
				Name:           answers[0],
				InitialColumn:  answers[1],
				PendingColumns: splitNames(answers[2]),
				FinalColumn:    answers[3],
				CancelColumn:   answers[4],
			})
			if err != nil {
				return err
			}
			m.loadBoards()
			m.info("Created board #%d %s", board.ID, board.Name)
			return nil
		},
	})
}

func (m *Model) deleteSelectedBoard() {
	m.mode = BoardsMode

	board := m.selectedBoard()
	if board == nil {
		return
	}
	if err := m.app.BoardService.DeleteBoard(m.ctx, board.ID); err != nil {
		m.fail(err)
		return
	}
	m.loadBoards()
	m.info("Deleted board #%d %s", board.ID, board.Name)
}

func splitNames(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ============================================================================
// CARDS
// ============================================================================

func (m *Model) newCardPrompt() tea.Cmd {
	return m.startPrompt(&prompt{
		title:  "New card on " + m.board.Name,
		fields: []promptField{{label: "Title", placeholder: "Write release notes"}},
		submit: func(m *Model, answers []string) error {
			card, err := m.app.CardService.CreateCard(m.ctx, cardservice.CreateCardRequest{
				Title:   answers[0],
				Columns: m.board.ColumnSet(),
			})
			if err != nil {
				return err
			}
			m.refreshBoard()
			m.info("Created card #%d", card.ID)
			return nil
		},
	})
}

// withCard runs fn on the selected card and refreshes the board afterwards,
// whether or not fn failed.
func (m *Model) withCard(fn func(card *models.Card) error) {
	card := m.selectedCard()
	if card == nil {
		m.info("No card selected")
		return
	}

	err := fn(card)
	m.refreshBoard()
	if err != nil {
		m.fail(err)
	}
}

func (m *Model) advance() {
	m.withCard(func(card *models.Card) error {
		if err := m.app.CardService.Advance(m.ctx, card.ID, m.board.ColumnSet()); err != nil {
			return err
		}
		m.info("Advanced card #%d", card.ID)
		return nil
	})
}

func (m *Model) cancel() {
	m.withCard(func(card *models.Card) error {
		column := m.board.CancelColumn()
		if column == nil {
			return fmt.Errorf("board %d has no %s column: %w", m.board.ID, models.ColumnKindCancel, cardservice.ErrInvalidState)
		}
		if err := m.app.CardService.Cancel(m.ctx, card.ID, column.ID, m.board.ColumnSet()); err != nil {
			return err
		}
		m.info("Cancelled card #%d", card.ID)
		return nil
	})
}

func (m *Model) reasonPrompt(verb string, apply func(m *Model, card *models.Card, reason string) error) tea.Cmd {
	card := m.selectedCard()
	if card == nil {
		m.info("No card selected")
		return nil
	}

	return m.startPrompt(&prompt{
		title:  fmt.Sprintf("%s card #%d", verb, card.ID),
		fields: []promptField{{label: "Reason", placeholder: "waiting for review"}},
		submit: func(m *Model, answers []string) error {
			err := apply(m, card, answers[0])
			m.refreshBoard()
			return err
		},
	})
}

func (m *Model) blockPrompt() tea.Cmd {
	return m.reasonPrompt("Block", func(m *Model, card *models.Card, reason string) error {
		if err := m.app.CardService.Block(m.ctx, card.ID, reason, m.board.ColumnSet()); err != nil {
			return err
		}
		m.info("Blocked card #%d", card.ID)
		return nil
	})
}

func (m *Model) unblockPrompt() tea.Cmd {
	return m.reasonPrompt("Unblock", func(m *Model, card *models.Card, reason string) error {
		if err := m.app.CardService.Unblock(m.ctx, card.ID, reason); err != nil {
			return err
		}
		m.info("Unblocked card #%d", card.ID)
		return nil
	})
}

// showCard loads the detail and block history of the selected card
func (m *Model) showCard() {
	card := m.selectedCard()
	if card == nil {
		return
	}

	detail, err := m.app.CardService.GetCardDetail(m.ctx, card.ID)
	if err != nil {
		m.fail(err)
		return
	}
	history, err := m.app.CardService.GetBlockHistory(m.ctx, card.ID)
	if err != nil {
		m.fail(err)
		return
	}

	m.detail = detail
	m.history = history
	m.mode = CardMode
}
