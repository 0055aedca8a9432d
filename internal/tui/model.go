package tui

import (
	"context"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// Mode represents the current interaction mode of the session.
// Each mode determines which keys are active and what is displayed.
type Mode int

const (
	BoardsMode        Mode = iota // Picking, creating and deleting boards
	BoardMode                     // Columns of the open board and the cards of one column
	CardMode                      // Detail and block history of one card
	InputMode                     // Prompting for names, titles or reasons
	DeleteConfirmMode             // Confirming board deletion
)

// Default size used until the terminal reports its own
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the interactive board session. It keeps no state the services
// do not also hold: every action re-reads what it shows.
type Model struct {
	ctx    context.Context
	app    *app.App
	styles Styles

	mode   Mode
	width  int
	height int

	boards list.Model
	cards  list.Model

	board   *models.Board
	columns []*models.ColumnSummary
	column  int // index into columns

	detail  *models.CardDetail
	history []*models.BlockEvent

	input  textinput.Model
	prompt *prompt

	notice notice
}

// New creates the session model. A positive boardID opens that board
// directly; otherwise the session starts on the board picker.
func New(ctx context.Context, a *app.App, scheme colors.ColorScheme, boardID types.BoardID) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	styles := NewStyles(scheme)

	m := Model{
		ctx:    ctx,
		app:    a,
		styles: styles,
		mode:   BoardsMode,
		width:  defaultWidth,
		height: defaultHeight,
		boards: newList("Boards", styles),
		cards:  newList("Cards", styles),
		input:  textinput.New(),
	}
	m.input.CharLimit = models.MaxReasonLength

	m.loadBoards()
	if boardID > 0 {
		m.openBoard(boardID)
	}
	m.resize(m.width, m.height)

	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// Board returns the open board, or nil on the board picker
func (m Model) Board() *models.Board {
	return m.board
}

// Notice returns the message shown on the status line
func (m Model) Notice() string {
	return m.notice.message
}

// Failed reports whether the status line holds an error
func (m Model) Failed() bool {
	return m.notice.level == levelError
}

func newList(title string, styles Styles) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.Title = title
	l.Styles.Title = styles.ListTitle
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// resize fits both lists between the header and the status lines
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	listHeight := max(height-headerHeight-footerHeight, 3)
	m.boards.SetSize(width, listHeight)
	m.cards.SetSize(width, listHeight)
}

func (m Model) currentColumn() *models.ColumnSummary {
	if m.column < 0 || m.column >= len(m.columns) {
		return nil
	}
	return m.columns[m.column]
}

func (m Model) selectedBoard() *models.Board {
	item, ok := m.boards.SelectedItem().(boardItem)
	if !ok {
		return nil
	}
	return item.board
}

func (m Model) selectedCard() *models.Card {
	item, ok := m.cards.SelectedItem().(cardItem)
	if !ok {
		return nil
	}
	return item.card
}
