package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Lines reserved around the lists: title and tabs above, notice and help below
const (
	headerHeight = 5
	footerHeight = 3
)

var helpLines = map[Mode]string{
	BoardsMode:        "enter open • n new board • d delete • r reload • q quit",
	BoardMode:         "←/→ column • enter details • n new • a advance • x cancel • b block • u unblock • esc boards • q quit",
	CardMode:          "esc back • q quit",
	InputMode:         "enter confirm • esc cancel",
	DeleteConfirmMode: "y delete • n keep",
}

// View renders the current state of the session
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	var body string
	switch m.mode {
	case BoardsMode:
		body = m.boards.View()
	case BoardMode:
		body = lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), m.cards.View())
	case CardMode:
		body = m.viewCard()
	case InputMode:
		body = m.viewPrompt()
	case DeleteConfirmMode:
		body = m.viewDeleteConfirm()
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewNotice(),
		m.styles.Help.Render(helpLines[m.mode]),
	)
	return view
}

func (m Model) viewHeader() string {
	title := "quadro"
	if m.board != nil {
		title = fmt.Sprintf("quadro › %s", m.board.Name)
	}
	return m.styles.Header.Render(title) + "\n"
}

// viewTabs renders one tab per column with its kind and card count
func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.columns))
	for i, c := range m.columns {
		label := fmt.Sprintf("%s %s (%d)", c.Name, m.styles.kind(c.Kind), c.CardCount)
		if i == m.column {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCard() string {
	d := m.detail
	if d == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("#%d %s", d.ID, d.Title)))
	if d.Blocked {
		b.WriteString("  " + m.styles.Blocked.Render("BLOCKED"))
	}
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(m.styles.Label.Render(label+":") + " " + value + "\n")
	}
	field("Column", d.ColumnName+" "+m.styles.kind(d.ColumnKind))
	if d.Blocked {
		field("Blocked", d.BlockReason)
	}
	field("Times blocked", fmt.Sprintf("%d", d.BlocksAmount))
	if d.Description != "" {
		field("Description", d.Description)
	}

	b.WriteString("\n" + m.styles.Label.Render("History") + "\n")
	if len(m.history) == 0 {
		b.WriteString(m.styles.Subtle.Render("never blocked") + "\n")
	}
	for _, e := range m.history {
		fmt.Fprintf(&b, "%s %-7s %s %s\n",
			m.styles.Subtle.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			e.Direction, e.Reason, m.styles.Subtle.Render("by "+e.Actor))
	}
	return b.String()
}

func (m Model) viewPrompt() string {
	p := m.prompt
	if p == nil {
		return ""
	}
	step := fmt.Sprintf("(%d/%d)", len(p.answers)+1, len(p.fields))
	return m.styles.Header.Render(p.title) + " " + m.styles.Subtle.Render(step) + "\n\n" +
		m.styles.Label.Render(p.current().label) + "\n" +
		m.input.View() + "\n"
}

func (m Model) viewDeleteConfirm() string {
	board := m.selectedBoard()
	if board == nil {
		return ""
	}
	return m.styles.Blocked.Render(fmt.Sprintf(
		"Delete board #%d %s with all its columns and cards? (y/n)", board.ID, board.Name)) + "\n"
}

func (m Model) viewNotice() string {
	switch {
	case m.notice.message == "":
		return ""
	case m.notice.level == levelError:
		return m.styles.Error.Render(m.notice.message)
	default:
		return m.styles.Info.Render(m.notice.message)
	}
}
