package format

import (
	"encoding/json"
	"io"

	"github.com/auroranest/markbridge/pkg/api"
)

func WriteJSONResult(w io.Writer, r api.Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

func WriteJSONResults(w io.Writer, rs []api.Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rs)
}

func WriteJSONDetections(w io.Writer, ds []Detection, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(ds)
}
