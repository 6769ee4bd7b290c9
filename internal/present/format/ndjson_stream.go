package format

import (
	"encoding/json"
	"io"

	"github.com/auroranest/markbridge/pkg/api"
)

// NDJSONStreamWriter incrementally writes results as NDJSON.
type NDJSONStreamWriter struct {
	enc *json.Encoder
}

// NewNDJSONStreamWriter creates a streaming NDJSON writer.
func NewNDJSONStreamWriter(w io.Writer) *NDJSONStreamWriter {
	return &NDJSONStreamWriter{enc: json.NewEncoder(w)}
}

// WriteResults writes a batch of results.
func (nw *NDJSONStreamWriter) WriteResults(rs []api.Result) error {
	for _, r := range rs {
		if err := nw.enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op for NDJSON output.
func (nw *NDJSONStreamWriter) Close() error { return nil }
