package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Styles holds every style of the session, built from the configured theme
type Styles struct {
	Header    lipgloss.Style
	ListTitle lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Subtle    lipgloss.Style
	Blocked   lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Kinds     map[models.ColumnKind]lipgloss.Style
}

// Tab borders: the active tab has no bottom border so it opens into the list
var (
	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}
)

// NewStyles builds the session styles from a color scheme
func NewStyles(scheme colors.ColorScheme) Styles {
	accent := lipgloss.Color(scheme.Accent)

	tab := lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(accent).
		Foreground(lipgloss.Color(scheme.Subtle)).
		Padding(0, 1)

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
		ListTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)).
			Background(accent).
			Padding(0, 1),
		Tab: tab,
		ActiveTab: tab.
			Border(activeTabBorder, true).
			Foreground(lipgloss.Color(scheme.Title)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
		Blocked: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Warning)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Success)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.ErrorFg)).
			Background(lipgloss.Color(scheme.ErrorBg)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
		Kinds: map[models.ColumnKind]lipgloss.Style{
			models.ColumnKindInitial: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
			models.ColumnKindPending: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Normal)),
			models.ColumnKindFinal:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Success)),
			models.ColumnKindCancel:  lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.ErrorFg)),
		},
	}
}

func (s Styles) kind(kind models.ColumnKind) string {
	text := string(kind)
	if style, ok := s.Kinds[kind]; ok {
		return style.Render(text)
	}
	return text
}
