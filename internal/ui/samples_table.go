package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/auroranest/markbridge/internal/sampledata"
)

// BrowseSamples opens an interactive table of the embedded samples and
// returns the name of the sample picked with enter, or "" when the
// browser was dismissed.
func BrowseSamples(_ context.Context, samples []sampledata.Sample) (string, error) {
	cols := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Kind", Width: 8},
		{Title: "File", Width: 24},
		{Title: "Summary", Width: 40},
	}

	rows := make([]table.Row, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, table.Row{
			truncate(s.Name, 16),
			s.Kind,
			truncate(s.File, 24),
			truncate(s.Summary, 40),
		})
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(12, max(3, len(rows)+3))),
	)

	// Basic styling
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := samplesModel{table: t, samples: samples}
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if fm, ok := final.(samplesModel); ok {
		return fm.picked, nil
	}
	return "", nil
}

type samplesModel struct {
	table   table.Model
	samples []sampledata.Sample
	picked  string
}

func (m samplesModel) Init() tea.Cmd { return nil }

func (m samplesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if i := m.table.Cursor(); i >= 0 && i < len(m.samples) {
				m.picked = m.samples[i].Name
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m samplesModel) View() string {
	if m.table.Height() < 3 {
		return "(no samples)\n"
	}
	return m.table.View() + "\n↑/↓ to navigate • enter to pick • q to exit\n"
}

func truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		if len(s) > n {
			return s[:n]
		}
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
