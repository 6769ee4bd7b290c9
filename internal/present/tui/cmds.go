package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/auroranest/markbridge/internal/download"
	"github.com/auroranest/markbridge/pkg/api"
)

// saveResultMsg conveys the outcome of a save operation back to Update.
type saveResultMsg struct {
	path    string
	skipped bool
	err     error
	dur     time.Duration
}

// statusClearMsg wipes the transient status once its timer fires. The
// sequence number identifies which status message the timer belongs to.
type statusClearMsg struct {
	seq int
}

// saveCmd writes the result to path off the update loop and reports
// what happened.
func saveCmd(res api.Result, path string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		p, skipped, err := download.SaveAs(res, path)
		return saveResultMsg{path: p, skipped: skipped, err: err, dur: time.Since(start).Round(time.Millisecond)}
	}
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
