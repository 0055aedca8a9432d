package styles

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/models"
)

func TestPlainModeRendersTextUnchanged(t *testing.T) {
	Init(*colors.Default(), true)

	assert.True(t, Plain)
	assert.Equal(t, "[FINAL]", RenderKind(models.ColumnKindFinal))
	assert.Equal(t, "BLOCKED", RenderBlocked())
	assert.Equal(t, "Column: Doing", RenderField("Column", "Doing"))
	assert.Equal(t, "# Heading", RenderMarkdown("# Heading", 60))
	assert.Equal(t, "No description", RenderMarkdown("", 60))
}

func TestStyledModeKeepsContent(t *testing.T) {
	t.Cleanup(func() { Init(*colors.Default(), true) })
	Init(*colors.Monochrome(), false)

	assert.False(t, Plain)
	assert.Contains(t, RenderKind(models.ColumnKindCancel), "CANCEL")
	assert.Contains(t, RenderField("Title", "Ship it"), "Ship it")

	rendered := RenderMarkdown("**important** detail", 60)
	assert.Contains(t, rendered, "important")
	assert.Equal(t, rendered, strings.TrimSpace(rendered))
}

func TestIsTerminal_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	assert.False(t, IsTerminal(w))
}
