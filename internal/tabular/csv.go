package tabular

import (
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

// ToCSV joins headers and rows with commas. A cell is quote-wrapped
// (with embedded quotes doubled) when it contains a comma, a quote or a
// newline, and left bare otherwise.
func ToCSV(t *api.TableData) string {
	if t == nil {
		return ""
	}
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, csvLine(t.Headers))
	for _, row := range t.Rows {
		lines = append(lines, csvLine(row))
	}
	return strings.Join(lines, "\n")
}

func csvLine(cells []string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = csvCell(c)
	}
	return strings.Join(out, ",")
}

func csvCell(c string) string {
	if strings.ContainsAny(c, ",\"\n") {
		return `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return c
}
