package present

import (
	"context"
	"io"

	"github.com/auroranest/markbridge/internal/present/format"
	"github.com/auroranest/markbridge/pkg/api"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Style      string // glamour style for pretty output
	Wrap       int    // wrap column for pretty output
}

// ParseMode parses a string like "plain", "pretty", "json", "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModeJSON:
		return "json"
	case ModeNDJSON:
		return "ndjson"
	default:
		return "plain"
	}
}

// RenderResult renders a single conversion result according to options.
func RenderResult(ctx context.Context, w io.Writer, r api.Result, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONResult(w, r, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONResult(w, r)
	case ModePretty:
		return format.WritePrettyResult(w, r, opts.Style, opts.Wrap)
	default:
		return format.WritePlainResult(w, r)
	}
}

// RenderResults renders a batch of results according to options.
func RenderResults(ctx context.Context, w io.Writer, rs []api.Result, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONResults(w, rs, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONResults(w, rs)
	case ModePretty:
		for _, r := range rs {
			if err := format.WritePrettyResult(w, r, opts.Style, opts.Wrap); err != nil {
				return err
			}
		}
		return nil
	default:
		return format.WritePlainResults(w, rs)
	}
}

// RenderDetections renders classification results according to options.
// Pretty detections fall back to the plain table.
func RenderDetections(ctx context.Context, w io.Writer, ds []format.Detection, opts Options, headers bool) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONDetections(w, ds, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONDetections(w, ds)
	default:
		return format.WriteDetections(w, ds, headers)
	}
}

// ResultStream incrementally writes conversion results; callers must
// Close to finish the output.
type ResultStream interface {
	WriteResults([]api.Result) error
	Close() error
}

// NewStream returns a stream writer for the given mode so batches can
// be emitted one result at a time.
func NewStream(w io.Writer, opts Options) ResultStream {
	switch opts.Mode {
	case ModeJSON:
		return format.NewJSONStreamWriter(w, opts.JSONIndent)
	case ModeNDJSON:
		return format.NewNDJSONStreamWriter(w)
	case ModePretty:
		return format.NewPrettyStreamWriter(w, opts.Style, opts.Wrap)
	default:
		return format.NewPlainStreamWriter(w)
	}
}
