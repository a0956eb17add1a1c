package content

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// minWrap keeps narrow terminals readable
const minWrap = 20

type rendererKey struct {
	width int
	dark  bool
}

// Renderer turns markdown into styled terminal output. Term renderers are
// cached per wrap width and theme.
type Renderer struct {
	mu        sync.Mutex
	renderers map[rendererKey]*glamour.TermRenderer
}

// NewRenderer creates an empty renderer cache
func NewRenderer() *Renderer {
	return &Renderer{
		renderers: make(map[rendererKey]*glamour.TermRenderer),
	}
}

// Render renders markdown wrapped at width columns in the light or dark style
func (r *Renderer) Render(markdown string, width int, dark bool) (string, error) {
	tr, err := r.termRenderer(width, dark)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func (r *Renderer) termRenderer(width int, dark bool) (*glamour.TermRenderer, error) {
	if width < minWrap {
		width = minWrap
	}
	key := rendererKey{width: width, dark: dark}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.renderers[key]; ok {
		return tr, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(StyleName(dark)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	r.renderers[key] = tr
	return tr, nil
}

// StyleName returns the glamour standard style matching the theme
func StyleName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
