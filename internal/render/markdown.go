package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into styled terminal output. It caches the
// underlying glamour renderer and rebuilds it only when the wrap width
// changes, so it is cheap to call per frame.
type Renderer struct {
	mu    sync.Mutex
	style string
	wrap  int
	tr    *glamour.TermRenderer
}

// New returns a Renderer for the given glamour style and wrap column.
// An empty style means dracula; zero or negative wrap means 80 columns.
func New(style string, wrap int) *Renderer {
	if style == "" {
		style = "dracula"
	}
	if wrap <= 0 {
		wrap = 80
	}
	return &Renderer{style: style, wrap: wrap}
}

// Resize changes the wrap column; the glamour renderer is rebuilt on
// the next Markdown call.
func (r *Renderer) Resize(wrap int) {
	if wrap <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if wrap != r.wrap {
		r.wrap = wrap
		r.tr = nil
	}
}

// Markdown renders md for the terminal. If the renderer cannot be built
// or rendering fails, the input is returned unchanged so callers always
// have something to show.
func (r *Renderer) Markdown(md string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tr == nil {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(r.wrap),
		)
		if err != nil {
			return md
		}
		r.tr = tr
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md
	}
	return out
}
