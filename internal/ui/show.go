package ui

import (
	"fmt"
	"strings"

	"github.com/auroranest/markbridge/internal/present/format"
	"github.com/auroranest/markbridge/internal/render"
	"github.com/auroranest/markbridge/pkg/api"
)

// FormatResult returns a human-readable detail view of a conversion,
// matching the `convert --show` output. rend may be nil for plain
// output.
func FormatResult(r api.Result, source string, rend *render.Renderer) string {
	if source == "" {
		source = "(stdin)"
	}
	body := format.PreviewMarkdown(r)
	if rend != nil {
		body = rend.Markdown(body)
	}
	return fmt.Sprintf(
		"Source: %s\nKind: %s\nPreview: %s\n---\n%s\n",
		source,
		r.Kind,
		Describe(r.Preview),
		strings.TrimRight(body, "\n"),
	)
}

// Describe summarizes a preview in one short phrase.
func Describe(p api.Preview) string {
	switch p := p.(type) {
	case api.TablePreview:
		return fmt.Sprintf("table, %d columns x %d rows", len(p.Table.Headers), len(p.Table.Rows))
	case api.SlidesPreview:
		if len(p.Slides) == 1 {
			return "1 slide"
		}
		return fmt.Sprintf("%d slides", len(p.Slides))
	case api.DocumentPreview:
		return fmt.Sprintf("html document, %d bytes", len(p.HTML))
	case api.MarkdownPreview:
		return fmt.Sprintf("markdown, %d lines", countLines(p.Markdown))
	case api.TextPreview:
		return fmt.Sprintf("plain text, %d lines", countLines(p.Text))
	case api.EmptyPreview:
		return "empty: " + p.Reason
	default:
		return "unknown"
	}
}

func countLines(s string) int {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
