// Package convert routes input text through the conversion core and
// assembles results. Every conversion is a pure function of its input;
// the only state a Service carries is presentation text for fallback
// slide titles.
package convert

import (
	"strings"

	"github.com/auroranest/markbridge/internal/blockdoc"
	"github.com/auroranest/markbridge/internal/htmldoc"
	"github.com/auroranest/markbridge/internal/slides"
	"github.com/auroranest/markbridge/internal/tabular"
	"github.com/auroranest/markbridge/pkg/api"
)

// Service converts between office-style text and Markdown. The zero
// value is not usable; call New.
type Service struct {
	titles slides.Titles
}

// New returns a Service with the given fallback slide titles. Empty
// strings keep the stock placeholders.
func New(fallbackTitle, defaultTitle string) *Service {
	t := slides.DefaultTitles()
	if fallbackTitle != "" {
		t.Fallback = fallbackTitle
	}
	if defaultTitle != "" {
		t.Default = defaultTitle
	}
	return &Service{titles: t}
}

// Convert dispatches on direction. It never fails: inputs with no
// recognizable structure yield a result with empty text and an
// EmptyPreview.
func (s *Service) Convert(k api.Kind, dir api.Direction, text string) api.Result {
	if dir == api.FromMarkdown {
		return s.FromMarkdown(k, text)
	}
	return s.ToMarkdown(k, text)
}

// ToMarkdown converts office-style input of the given kind to Markdown.
// Markdown input passes through unchanged; unknown kinds are treated as
// plain text.
func (s *Service) ToMarkdown(k api.Kind, text string) api.Result {
	switch k {
	case api.KindExcel:
		t := tabular.Parse(text)
		if t == nil {
			return empty(k, "no table detected")
		}
		return api.Result{Kind: k, Text: tabular.ToMarkdown(t), Preview: api.TablePreview{Table: *t}}

	case api.KindPPT:
		sl := slides.ParseOutline(text, s.titles)
		if len(sl) == 0 {
			return empty(k, "no slides detected")
		}
		return api.Result{Kind: k, Text: slides.ToMarkdown(sl), Preview: api.SlidesPreview{Slides: sl}}

	case api.KindMarkdown:
		if strings.TrimSpace(text) == "" {
			return empty(k, "empty input")
		}
		return api.Result{Kind: k, Text: text, Preview: api.MarkdownPreview{Markdown: text}}

	default: // word, text, unknown: prose goes through the block parser
		blocks := blockdoc.Parse(text)
		if len(blocks) == 0 {
			return empty(k, "no document content")
		}
		md := blockdoc.ToMarkdown(blocks)
		return api.Result{Kind: k, Text: md, Preview: api.MarkdownPreview{Markdown: md}}
	}
}

// FromMarkdown converts Markdown to the office-style output of the
// given kind: a Word-compatible HTML document, CSV extracted from the
// first pipe table, or a plain slide outline. Markdown and text kinds
// pass through.
func (s *Service) FromMarkdown(k api.Kind, text string) api.Result {
	switch k {
	case api.KindWord:
		if strings.TrimSpace(text) == "" {
			return empty(k, "empty input")
		}
		fragment := htmldoc.Render(text)
		doc := htmldoc.Document(htmldoc.Title(text, "Document"), fragment)
		return api.Result{Kind: k, Text: doc, Preview: api.DocumentPreview{HTML: fragment}}

	case api.KindExcel:
		t := tabular.ParseMarkdown(text)
		if t == nil {
			return empty(k, "no markdown table found")
		}
		return api.Result{Kind: k, Text: tabular.ToCSV(t), Preview: api.TablePreview{Table: *t}}

	case api.KindPPT:
		sl := slides.FromMarkdown(text, s.titles)
		if len(sl) == 0 {
			return empty(k, "no slides detected")
		}
		return api.Result{Kind: k, Text: slides.ToOutline(sl), Preview: api.SlidesPreview{Slides: sl}}

	case api.KindMarkdown:
		if strings.TrimSpace(text) == "" {
			return empty(k, "empty input")
		}
		return api.Result{Kind: k, Text: text, Preview: api.MarkdownPreview{Markdown: text}}

	default: // text and unknown: identity with a plain-text preview
		if strings.TrimSpace(text) == "" {
			return empty(k, "empty input")
		}
		return api.Result{Kind: k, Text: text, Preview: api.TextPreview{Text: text}}
	}
}

func empty(k api.Kind, reason string) api.Result {
	return api.Result{Kind: k, Preview: api.EmptyPreview{Reason: reason}}
}
