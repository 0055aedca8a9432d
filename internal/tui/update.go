package tui

import (
	tea "charm.land/bubbletea/v2"
)

// Update handles all messages and updates the model.
// Service calls run synchronously: each key press sees the stored state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd := m.handleKey(msg)
		return m, cmd
	}

	// Everything else (cursor blink and the like) goes to the active widget
	var cmd tea.Cmd
	switch m.mode {
	case InputMode:
		m.input, cmd = m.input.Update(msg)
	case BoardsMode:
		m.boards, cmd = m.boards.Update(msg)
	case BoardMode:
		m.cards, cmd = m.cards.Update(msg)
	}
	return m, cmd
}

// handleKey dispatches key presses to the handler of the current mode
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.mode {
	case BoardsMode:
		return m.handleBoardsKey(msg)
	case BoardMode:
		return m.handleBoardKey(msg)
	case CardMode:
		return m.handleCardKey(msg)
	case InputMode:
		return m.handleInputKey(msg)
	case DeleteConfirmMode:
		return m.handleDeleteConfirmKey(msg)
	}
	return nil
}

func (m *Model) handleBoardsKey(msg tea.KeyPressMsg) tea.Cmd {
	m.clearNotice()

	switch msg.String() {
	case "q":
		return tea.Quit
	case "enter":
		if board := m.selectedBoard(); board != nil {
			m.openBoard(board.ID)
		}
		return nil
	case "n":
		return m.newBoardPrompt()
	case "d":
		if m.selectedBoard() != nil {
			m.mode = DeleteConfirmMode
		}
		return nil
	case "r":
		m.loadBoards()
		return nil
	}

	var cmd tea.Cmd
	m.boards, cmd = m.boards.Update(msg)
	return cmd
}

func (m *Model) handleBoardKey(msg tea.KeyPressMsg) tea.Cmd {
	m.clearNotice()

	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc", "backspace":
		m.closeBoard()
		return nil
	case "left", "h":
		m.moveColumn(-1)
		return nil
	case "right", "l":
		m.moveColumn(1)
		return nil
	case "enter":
		m.showCard()
		return nil
	case "n":
		return m.newCardPrompt()
	case "a":
		m.advance()
		return nil
	case "x":
		m.cancel()
		return nil
	case "b":
		return m.blockPrompt()
	case "u":
		return m.unblockPrompt()
	case "r":
		m.refreshBoard()
		return nil
	}

	var cmd tea.Cmd
	m.cards, cmd = m.cards.Update(msg)
	return cmd
}

func (m *Model) handleCardKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc", "backspace", "enter":
		m.detail = nil
		m.history = nil
		m.mode = BoardMode
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		m.info("Cancelled")
		return nil
	case "enter":
		return m.answer()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleDeleteConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.deleteSelectedBoard()
	case "n", "N", "esc":
		m.mode = BoardsMode
	}
	return nil
}
