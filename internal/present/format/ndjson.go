package format

import (
	"encoding/json"
	"io"

	"github.com/auroranest/markbridge/pkg/api"
)

// WriteNDJSONResults writes results as newline-delimited JSON objects.
func WriteNDJSONResults(w io.Writer, rs []api.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range rs {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteNDJSONResult writes a single result as one JSON line.
func WriteNDJSONResult(w io.Writer, r api.Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(r)
}

// WriteNDJSONDetections writes detections as newline-delimited JSON objects.
func WriteNDJSONDetections(w io.Writer, ds []Detection) error {
	enc := json.NewEncoder(w)
	for _, d := range ds {
		if err := enc.Encode(d); err != nil {
			return err
		}
	}
	return nil
}
