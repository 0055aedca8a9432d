package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderers are cached by width; building one parses the whole style sheet
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a card description as terminal markdown.
// In plain mode, or when rendering fails, the source text is returned.
func RenderMarkdown(source string, width int) string {
	if source == "" {
		return SubtitleStyle.Render("No description")
	}
	if Plain {
		return source
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return source
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimSpace(rendered)
}
