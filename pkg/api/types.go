package api

// Block is one structural unit of a Word-like plain document:
// a heading, a paragraph (optionally labeled), or a list.
// The set of implementations is closed.
type Block interface {
	block()
}

// Heading is a section heading with a level clamped to 1..6.
type Heading struct {
	Text  string
	Level int
}

// Paragraph is a run of prose. Label is set for "label: value" lines
// and empty otherwise.
type Paragraph struct {
	Text  string
	Label string
}

// List is a run of consecutive list items of one kind.
type List struct {
	Ordered bool
	Items   []string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (List) block()      {}

// TableData is a parsed delimiter table: one header row plus body rows.
// After Normalize every row (headers included) has the same cell count.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Normalize right-pads headers and rows with empty cells so that all
// rows share the width of the widest row.
func (t *TableData) Normalize() {
	if t == nil {
		return
	}
	width := len(t.Headers)
	for _, r := range t.Rows {
		if len(r) > width {
			width = len(r)
		}
	}
	t.Headers = padCells(t.Headers, width)
	for i, r := range t.Rows {
		t.Rows[i] = padCells(r, width)
	}
}

func padCells(cells []string, width int) []string {
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}

// Slide is one slide of a PowerPoint-like outline. Title is never
// empty: parsers substitute a fallback title when the source has none.
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Result is the outcome of one conversion: the raw output text to
// display or save, plus a structured preview for richer rendering.
// Results are derived fresh per call and never persisted.
type Result struct {
	Kind    Kind
	Text    string
	Preview Preview
}
