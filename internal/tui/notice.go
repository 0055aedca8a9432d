package tui

import (
	"fmt"

	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
)

// noticeLevel is the severity of the status line
type noticeLevel int

const (
	levelInfo noticeLevel = iota
	levelError
)

// notice is the one-line message under the board. It survives until the
// next key press so a rejected transition stays visible.
type notice struct {
	level   noticeLevel
	message string
}

func (m *Model) info(format string, args ...any) {
	m.notice = notice{level: levelInfo, message: fmt.Sprintf(format, args...)}
}

// fail shows err on the status line. Transition failures are prefixed with
// their kind so BLOCKED and ALREADY_FINISHED read the same as in the CLI.
func (m *Model) fail(err error) {
	message := err.Error()
	if kind := cardservice.KindOf(err); kind != cardservice.KindUnknown {
		message = kind.String() + ": " + message
	}
	m.notice = notice{level: levelError, message: message}
}

func (m *Model) clearNotice() {
	m.notice = notice{}
}
