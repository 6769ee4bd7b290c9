package format

import (
	"io"
	"strings"
	"text/tabwriter"

	"github.com/auroranest/markbridge/pkg/api"
)

// Detection pairs an input name with its classified kind.
type Detection struct {
	Name string   `json:"name"`
	Kind api.Kind `json:"kind"`
}

// TSV columns: name, kind
var detectionHeader = "name\tkind\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// WriteDetections writes one line per input, tab-aligned.
func WriteDetections(w io.Writer, ds []Detection, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, detectionHeader)
	}
	for _, d := range ds {
		_, _ = io.WriteString(tw, esc(d.Name)+"\t"+d.Kind.String()+"\n")
	}
	return tw.Flush()
}

// WritePlainResult writes the converted text verbatim, ensuring a
// trailing newline. Empty conversions write nothing.
func WritePlainResult(w io.Writer, r api.Result) error {
	return writeText(w, r.Text)
}

// WritePlainResults writes converted texts separated by blank lines.
func WritePlainResults(w io.Writer, rs []api.Result) error {
	wroteAny := false
	for _, r := range rs {
		if r.Text == "" {
			continue
		}
		if wroteAny {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeText(w, r.Text); err != nil {
			return err
		}
		wroteAny = true
	}
	return nil
}

func writeText(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
