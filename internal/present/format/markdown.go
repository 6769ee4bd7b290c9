package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/auroranest/markbridge/internal/slides"
	"github.com/auroranest/markbridge/internal/tabular"
	"github.com/auroranest/markbridge/pkg/api"
)

// WritePrettyResult renders a result for human eyes using glamour.
// Markdown output renders directly; office output renders a markdown
// view of its preview.
func WritePrettyResult(w io.Writer, r api.Result, style string, wrap int) error {
	if style == "" {
		style = "dracula"
	}
	if wrap <= 0 {
		wrap = 80
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := tr.Render(PreviewMarkdown(r))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

// PreviewMarkdown builds the markdown that pretty output renders: the
// conversion text when it already is markdown, otherwise a markdown
// rendering of the typed preview.
func PreviewMarkdown(r api.Result) string {
	switch p := r.Preview.(type) {
	case api.MarkdownPreview:
		return p.Markdown
	case api.TablePreview:
		return tabular.ToMarkdown(&p.Table)
	case api.SlidesPreview:
		return slides.ToMarkdown(p.Slides)
	case api.DocumentPreview:
		return "```html\n" + strings.TrimRight(p.HTML, "\n") + "\n```"
	case api.TextPreview:
		return p.Text
	case api.EmptyPreview:
		return "> nothing to convert: " + p.Reason
	default:
		return r.Text
	}
}
