package format

import (
	"io"

	"github.com/auroranest/markbridge/pkg/api"
)

// PrettyStreamWriter incrementally renders results with glamour.
type PrettyStreamWriter struct {
	w     io.Writer
	style string
	wrap  int
}

// NewPrettyStreamWriter creates a streaming pretty writer.
func NewPrettyStreamWriter(w io.Writer, style string, wrap int) *PrettyStreamWriter {
	return &PrettyStreamWriter{w: w, style: style, wrap: wrap}
}

// WriteResults renders a batch of results.
func (pw *PrettyStreamWriter) WriteResults(rs []api.Result) error {
	for _, r := range rs {
		if err := WritePrettyResult(pw.w, r, pw.style, pw.wrap); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op for pretty output.
func (pw *PrettyStreamWriter) Close() error { return nil }
