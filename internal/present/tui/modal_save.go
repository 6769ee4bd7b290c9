package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

// saveModal is a foreground modal asking where to write the output.
type saveModal struct {
	path   textinput.Model
	width  int
	height int
	padX   int
	padY   int
	box    lipglossv2.Style
}

func newSaveModal(initial string, termW, termH int) *saveModal {
	m := &saveModal{padX: 2, padY: 1}
	ti := textinput.New()
	ti.Prompt = "save to: "
	ti.Placeholder = "./converted.md"
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	m.path = ti
	m.resizeForTerm(termW, termH)
	return m
}

func (m *saveModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := int(float64(termW) * 0.6)
	if termW < 80 {
		w = termW - 4
	}
	if w < 46 {
		w = max(42, termW-2)
	}
	if w > 90 {
		w = 90
	}
	h := 7
	if termH < 10 {
		h = max(5, termH-2)
	}
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))

	innerW := w - 2 - m.padX*2
	minW := 12
	if innerW < minW {
		innerW = minW
	}
	m.path.Width = max(minW, innerW-lipgloss.Width(m.path.Prompt))
}

func (m *saveModal) value() string {
	return m.path.Value()
}

func (m *saveModal) update(msg tea.Msg) (*saveModal, tea.Cmd) {
	if x, ok := msg.(tea.WindowSizeMsg); ok {
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m *saveModal) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Save output")
	help := lipgloss.NewStyle().Faint(true).Render("enter=save • esc/ctrl+q=cancel")
	body := strings.Join([]string{
		header,
		"",
		m.path.View(),
		"",
		help,
	}, "\n")
	return m.box.Render(body)
}
