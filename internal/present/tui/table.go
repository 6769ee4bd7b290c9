package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/auroranest/markbridge/pkg/api"
)

const maxColWidth = 28

// renderGrid lays out a table with display-width aware columns so CJK
// cells stay aligned. Columns are capped at maxColWidth and the widest
// columns shrink first when the grid would overflow the pane.
func renderGrid(t api.TableData, width int) string {
	t.Normalize()
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColWidth {
			widths[i] = maxColWidth
		}
		if widths[i] < 1 {
			widths[i] = 1
		}
	}

	total := func() int {
		sum := 3 * (cols - 1)
		for _, w := range widths {
			sum += w
		}
		return sum
	}
	for total() > width {
		wi, ww := 0, 0
		for i, w := range widths {
			if w > ww {
				wi, ww = i, w
			}
		}
		if ww <= 4 {
			break
		}
		widths[wi] = ww - 1
	}

	row := func(cells []string) string {
		parts := make([]string, cols)
		for i := 0; i < cols; i++ {
			c := ""
			if i < len(cells) {
				c = cells[i]
			}
			c = runewidth.Truncate(c, widths[i], "…")
			parts[i] = runewidth.FillRight(c, widths[i])
		}
		return strings.Join(parts, " │ ")
	}

	var b strings.Builder
	b.WriteString(headerKeyStyle.Render(row(t.Headers)))
	b.WriteString("\n")
	sep := make([]string, cols)
	for i := range sep {
		sep[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(strings.Join(sep, "─┼─"))
	for _, r := range t.Rows {
		b.WriteString("\n")
		b.WriteString(row(r))
	}
	return b.String()
}

// slideFrames renders each slide as a bordered card.
func slideFrames(sl []api.Slide, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder).
		Padding(0, 1).
		Width(inner)

	out := make([]string, 0, len(sl))
	for _, s := range sl {
		var b strings.Builder
		b.WriteString(headerKeyStyle.Render(s.Title))
		for _, bullet := range s.Bullets {
			b.WriteString("\n• " + bullet)
		}
		out = append(out, card.Render(b.String()))
	}
	return strings.Join(out, "\n")
}
