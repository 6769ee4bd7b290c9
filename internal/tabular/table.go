// Package tabular parses Excel-like delimiter text (comma or tab,
// quote-aware) and renders tables as Markdown pipe syntax or CSV.
package tabular

import (
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

// Parse splits raw delimiter text into a header row plus body rows.
// Blank lines are dropped. Within a line, a double quote toggles quote
// mode; commas and tabs inside quotes are literal cell content. Quote
// characters are consumed by the toggle and not otherwise unescaped.
// The first row becomes the headers. Returns nil when the input has no
// non-blank lines.
func Parse(text string) *api.TableData {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitCells(line))
	}
	if len(rows) == 0 {
		return nil
	}
	t := &api.TableData{Headers: rows[0], Rows: rows[1:]}
	t.Normalize()
	return t
}

// splitCells splits one line on commas and tabs, honoring the quote
// toggle. Cells are trimmed.
func splitCells(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case !inQuotes && (r == ',' || r == '\t'):
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}
