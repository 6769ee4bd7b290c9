package format

import (
	"io"

	"github.com/auroranest/markbridge/pkg/api"
)

// PlainStreamWriter incrementally writes result texts in the same plain
// format: verbatim, blank line between results.
type PlainStreamWriter struct {
	w        io.Writer
	wroteAny bool
}

// NewPlainStreamWriter creates a streaming plain writer.
func NewPlainStreamWriter(w io.Writer) *PlainStreamWriter {
	return &PlainStreamWriter{w: w}
}

// WriteResults writes a batch of results. Empty conversions are skipped.
func (pw *PlainStreamWriter) WriteResults(rs []api.Result) error {
	for _, r := range rs {
		if r.Text == "" {
			continue
		}
		if pw.wroteAny {
			if _, err := io.WriteString(pw.w, "\n"); err != nil {
				return err
			}
		}
		if err := writeText(pw.w, r.Text); err != nil {
			return err
		}
		pw.wroteAny = true
	}
	return nil
}

// Close is a no-op for plain output.
func (pw *PlainStreamWriter) Close() error { return nil }
