package tabular

import (
	"regexp"
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

var pipeRowRe = regexp.MustCompile(`^\|.*\|$`)

// ToMarkdown renders the table as a standard pipe table: header row, a
// `---` separator per column, then body rows. Cells are inserted
// verbatim; embedded pipes are not escaped.
func ToMarkdown(t *api.TableData) string {
	if t == nil || len(t.Headers) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, pipeRow(t.Headers))
	sep := make([]string, len(t.Headers))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, pipeRow(sep))
	for _, row := range t.Rows {
		lines = append(lines, pipeRow(row))
	}
	return strings.Join(lines, "\n")
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// ParseMarkdown extracts the first pipe table from a Markdown document.
// The first line shaped like `|...|` must be followed immediately by a
// separator line (pipes, dashes, optional alignment colons); otherwise
// the document is rejected. Body rows accumulate from subsequent lines
// until the first line that is not shaped like a pipe row. Returns nil
// when no table is found or the header row has no cells.
func ParseMarkdown(md string) *api.TableData {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		if !isPipeRow(line) {
			continue
		}
		if i+1 >= len(lines) || !isSeparatorRow(lines[i+1]) {
			return nil
		}
		headers := splitPipeRow(line)
		if len(headers) == 0 {
			return nil
		}
		var rows [][]string
		for _, next := range lines[i+2:] {
			if !isPipeRow(next) {
				break
			}
			rows = append(rows, splitPipeRow(next))
		}
		t := &api.TableData{Headers: headers, Rows: rows}
		t.Normalize()
		return t
	}
	return nil
}

func isPipeRow(line string) bool {
	return pipeRowRe.MatchString(strings.TrimSpace(line))
}

// isSeparatorRow reports whether the line is a pipe-table separator:
// only pipes, dashes, colons and spaces, with at least one dash.
func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "-") {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return trimmed != ""
}

// splitPipeRow splits a `| a | b |` line into trimmed cells, dropping
// the empty boundary fields produced by the outer pipes.
func splitPipeRow(line string) []string {
	fields := strings.Split(strings.TrimSpace(line), "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = strings.TrimSpace(f)
	}
	return cells
}
