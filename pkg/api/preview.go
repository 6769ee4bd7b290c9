package api

import (
	"encoding/json"
	"fmt"
)

// PreviewVariant discriminates the Preview implementations in JSON
// output and in rendering switch statements.
type PreviewVariant string

const (
	VariantEmpty    PreviewVariant = "empty"
	VariantMarkdown PreviewVariant = "markdown"
	VariantDocument PreviewVariant = "document-html"
	VariantTable    PreviewVariant = "table"
	VariantSlides   PreviewVariant = "slides"
	VariantText     PreviewVariant = "text"
)

// Preview is the structured, UI-facing representation of a conversion
// result, distinct from the raw output text. The set of implementations
// is closed.
type Preview interface {
	Variant() PreviewVariant
}

// EmptyPreview signals that the input had no convertible content.
type EmptyPreview struct {
	Reason string
}

// MarkdownPreview carries Markdown meant to be rendered for display.
type MarkdownPreview struct {
	Markdown string
}

// DocumentPreview carries the rendered HTML fragment of a Word-bound
// document.
type DocumentPreview struct {
	HTML string
}

// TablePreview carries the parsed table behind a tabular conversion.
type TablePreview struct {
	Table TableData
}

// SlidesPreview carries the slide outline behind a slide conversion.
type SlidesPreview struct {
	Slides []Slide
}

// TextPreview is the plain-text fallback when nothing richer applies.
type TextPreview struct {
	Text string
}

func (EmptyPreview) Variant() PreviewVariant    { return VariantEmpty }
func (MarkdownPreview) Variant() PreviewVariant { return VariantMarkdown }
func (DocumentPreview) Variant() PreviewVariant { return VariantDocument }
func (TablePreview) Variant() PreviewVariant    { return VariantTable }
func (SlidesPreview) Variant() PreviewVariant   { return VariantSlides }
func (TextPreview) Variant() PreviewVariant     { return VariantText }

// previewEnvelope is the wire shape of a Preview: a variant tag plus
// exactly one payload field.
type previewEnvelope struct {
	Variant  PreviewVariant `json:"variant"`
	Reason   string         `json:"reason,omitempty"`
	Markdown string         `json:"markdown,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Table    *TableData     `json:"table,omitempty"`
	Slides   []Slide        `json:"slides,omitempty"`
	Text     string         `json:"text,omitempty"`
}

type resultEnvelope struct {
	Kind    Kind            `json:"kind"`
	Text    string          `json:"text"`
	Preview previewEnvelope `json:"preview"`
}

// MarshalJSON encodes the result with a variant-tagged preview object.
func (r Result) MarshalJSON() ([]byte, error) {
	env := resultEnvelope{Kind: r.Kind, Text: r.Text}
	switch p := r.Preview.(type) {
	case nil:
		env.Preview.Variant = VariantEmpty
	case EmptyPreview:
		env.Preview.Variant = VariantEmpty
		env.Preview.Reason = p.Reason
	case MarkdownPreview:
		env.Preview.Variant = VariantMarkdown
		env.Preview.Markdown = p.Markdown
	case DocumentPreview:
		env.Preview.Variant = VariantDocument
		env.Preview.HTML = p.HTML
	case TablePreview:
		env.Preview.Variant = VariantTable
		t := p.Table
		env.Preview.Table = &t
	case SlidesPreview:
		env.Preview.Variant = VariantSlides
		env.Preview.Slides = p.Slides
	case TextPreview:
		env.Preview.Variant = VariantText
		env.Preview.Text = p.Text
	default:
		return nil, fmt.Errorf("unknown preview variant %T", r.Preview)
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes a variant-tagged result produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var env resultEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	r.Kind = env.Kind
	r.Text = env.Text
	switch env.Preview.Variant {
	case VariantEmpty, "":
		r.Preview = EmptyPreview{Reason: env.Preview.Reason}
	case VariantMarkdown:
		r.Preview = MarkdownPreview{Markdown: env.Preview.Markdown}
	case VariantDocument:
		r.Preview = DocumentPreview{HTML: env.Preview.HTML}
	case VariantTable:
		var t TableData
		if env.Preview.Table != nil {
			t = *env.Preview.Table
		}
		r.Preview = TablePreview{Table: t}
	case VariantSlides:
		r.Preview = SlidesPreview{Slides: env.Preview.Slides}
	case VariantText:
		r.Preview = TextPreview{Text: env.Preview.Text}
	default:
		return fmt.Errorf("unknown preview variant %q", env.Preview.Variant)
	}
	return nil
}
