package styles

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:", "Blocked:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "History"

	// Status styles
	BlockedStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Column kind styles
	kindStyles map[models.ColumnKind]lipgloss.Style

	// Plain is true when output is not a terminal; renderers skip decoration
	Plain bool
)

func init() {
	Init(*colors.Default(), true)
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Init initializes all CLI styles with the given color scheme.
// With plain set every style renders its text unchanged.
func Init(scheme colors.ColorScheme, plain bool) {
	Plain = plain
	if plain {
		empty := lipgloss.NewStyle()
		CardStyle, TitleStyle, SubtitleStyle = empty, empty, empty
		LabelStyle, ValueStyle, SectionStyle = empty, empty, empty
		BlockedStyle, SuccessStyle, ErrorStyle = empty, empty, empty
		kindStyles = map[models.ColumnKind]lipgloss.Style{}
		return
	}

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	BlockedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Warning))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

	kindStyles = map[models.ColumnKind]lipgloss.Style{
		models.ColumnKindInitial: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
		models.ColumnKindPending: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Normal)),
		models.ColumnKindFinal:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Success)),
		models.ColumnKindCancel:  lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.ErrorFg)),
	}
}

// RenderKind renders a column kind as "[KIND]"
func RenderKind(kind models.ColumnKind) string {
	text := "[" + string(kind) + "]"
	if style, ok := kindStyles[kind]; ok {
		return style.Render(text)
	}
	return text
}

// RenderBlocked renders the blocked marker shown next to card titles
func RenderBlocked() string {
	return BlockedStyle.Render("BLOCKED")
}

// RenderField renders "label: value" with the field styles
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
