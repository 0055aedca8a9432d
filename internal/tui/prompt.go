package tui

import (
	tea "charm.land/bubbletea/v2"
)

// promptField is one question of a prompt
type promptField struct {
	label       string
	placeholder string
}

// prompt collects one answer per field with the shared text input, then
// hands them to submit. back is the mode restored afterwards.
type prompt struct {
	title   string
	fields  []promptField
	answers []string
	back    Mode
	submit  func(m *Model, answers []string) error
}

func (p *prompt) current() promptField {
	return p.fields[len(p.answers)]
}

// startPrompt switches to InputMode and focuses the input on the first field
func (m *Model) startPrompt(p *prompt) tea.Cmd {
	p.back = m.mode
	m.prompt = p
	m.mode = InputMode
	return m.resetInput()
}

func (m *Model) resetInput() tea.Cmd {
	m.input.Reset()
	m.input.Placeholder = m.prompt.current().placeholder
	return m.input.Focus()
}

// answer records the input value and either moves to the next field or
// submits. A failed submit is shown on the status line of the mode the
// prompt was opened from.
func (m *Model) answer() tea.Cmd {
	p := m.prompt
	p.answers = append(p.answers, m.input.Value())
	if len(p.answers) < len(p.fields) {
		return m.resetInput()
	}

	m.closePrompt()
	if err := p.submit(m, p.answers); err != nil {
		m.fail(err)
	}
	return nil
}

func (m *Model) closePrompt() {
	if m.prompt != nil {
		m.mode = m.prompt.back
	}
	m.prompt = nil
	m.input.Blur()
	m.input.Reset()
}
