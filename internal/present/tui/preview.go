// Package tui implements the interactive preview: an editable input
// pane on the left, the converted result on the right, re-rendered on
// every edit.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/auroranest/markbridge/internal/convert"
	"github.com/auroranest/markbridge/internal/download"
	"github.com/auroranest/markbridge/internal/kind"
	"github.com/auroranest/markbridge/internal/present/format"
	"github.com/auroranest/markbridge/internal/render"
	"github.com/auroranest/markbridge/internal/sampledata"
	"github.com/auroranest/markbridge/pkg/api"
)

// Options configure the preview session.
type Options struct {
	Conv     *convert.Service
	Detector *kind.Detector
	Samples  []sampledata.Sample

	Style     string
	Wrap      int
	OutputDir string

	Source    string
	Initial   string
	Kind      api.Kind // KindUnknown re-detects on every edit
	Direction api.Direction
}

// Run opens the interactive preview and blocks until the user quits.
// If the user exported on quit, the final result is written to stdout.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.exportOnQuit {
		return format.WritePlainResult(os.Stdout, fm.result)
	}
	return nil
}

type model struct {
	conv     *convert.Service
	detector *kind.Detector
	renderer *render.Renderer
	samples  []sampledata.Sample

	input   textarea.Model
	preview viewport.Model

	source   string
	kindSel  api.Kind
	kindLock bool
	dir      api.Direction
	result   api.Result

	width, height int
	focusRight    bool
	outDir        string
	sampleIdx     int
	exportOnQuit  bool

	status    string
	statusSeq int

	outputModal *outputModal
	saveModal   *saveModal
}

var kindRing = []api.Kind{api.KindWord, api.KindExcel, api.KindPPT, api.KindMarkdown, api.KindText}

func newModel(opts Options) model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type a document, table, or outline…"
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	ta.FocusedStyle.Base = lipgloss.NewStyle()
	ta.BlurredStyle = ta.FocusedStyle
	ta.Focus()

	dir := opts.Direction
	if dir == "" {
		dir = api.ToMarkdown
	}
	detector := opts.Detector
	if detector == nil {
		detector = kind.NewDetector(nil)
	}
	conv := opts.Conv
	if conv == nil {
		conv = convert.New("", "")
	}

	m := model{
		conv:     conv,
		detector: detector,
		renderer: render.New(opts.Style, opts.Wrap),
		samples:  opts.Samples,
		input:    ta,
		preview:  viewport.New(40, 10),
		source:   opts.Source,
		kindSel:  opts.Kind,
		kindLock: opts.Kind != api.KindUnknown,
		dir:      dir,
		outDir:   opts.OutputDir,
	}
	if opts.Initial != "" {
		m.input.SetValue(opts.Initial)
	}
	m.reconvert()
	return m
}

func (m model) Init() tea.Cmd { return textarea.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saveResultMsg:
		m.saveModal = nil
		switch {
		case msg.err != nil:
			return m, m.setStatus(fmt.Sprintf("save failed: %v", msg.err))
		case msg.skipped:
			return m, m.setStatus(fmt.Sprintf("unchanged %s (%s)", msg.path, msg.dur))
		default:
			return m, m.setStatus(fmt.Sprintf("saved %s (%s)", msg.path, msg.dur))
		}

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		if m.outputModal != nil {
			m.outputModal.resizeForTerm(msg.Width, msg.Height)
		}
		if m.saveModal != nil {
			m.saveModal.resizeForTerm(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.saveModal != nil {
		switch msg.String() {
		case "enter":
			path := m.saveModal.value()
			m.saveModal = nil
			if strings.TrimSpace(path) == "" {
				return m, m.setStatus("save cancelled: empty path")
			}
			return m, saveCmd(m.result, path)
		case "esc", "ctrl+q":
			m.saveModal = nil
			return m, nil
		}
		m.saveModal, cmd = m.saveModal.update(msg)
		return m, cmd
	}

	if m.outputModal != nil {
		switch msg.String() {
		case "esc", "q", "enter", "ctrl+o", "ctrl+q":
			m.outputModal = nil
			return m, nil
		}
		m.outputModal, cmd = m.outputModal.update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit

	case "esc":
		if m.focusRight {
			m.focusRight = false
			m.input.Focus()
			return m, textarea.Blink
		}
		return m, tea.Quit

	case "tab":
		m.focusRight = !m.focusRight
		if m.focusRight {
			m.input.Blur()
			return m, nil
		}
		m.input.Focus()
		return m, textarea.Blink

	case "ctrl+d":
		if m.dir == api.ToMarkdown {
			m.dir = api.FromMarkdown
		} else {
			m.dir = api.ToMarkdown
		}
		m.reconvert()
		return m, m.setStatus("direction: " + m.dir.String())

	case "ctrl+k":
		status := m.cycleKind()
		m.reconvert()
		return m, m.setStatus(status)

	case "ctrl+n":
		return m, m.loadNextSample()

	case "ctrl+s":
		sm := newSaveModal(m.defaultSavePath(), m.width, m.height)
		m.saveModal = sm
		return m, textinput.Blink

	case "ctrl+o":
		m.outputModal = newOutputModal(m.result.Text, m.width, m.height)
		return m, nil

	case "ctrl+e":
		m.exportOnQuit = true
		return m, tea.Quit
	}

	if m.focusRight {
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.reconvert()
	}
	return m, cmd
}

// reconvert reruns detection and conversion against the current input
// and refreshes the preview pane. Conversion is pure and cheap, so it
// runs synchronously on every edit.
func (m *model) reconvert() {
	text := m.input.Value()
	if !m.kindLock {
		m.kindSel = m.detector.Detect(m.source, text)
	}
	m.result = m.conv.Convert(m.kindSel, m.dir, text)
	m.preview.SetContent(m.previewContent())
}

func (m *model) previewContent() string {
	w := m.preview.Width
	if w <= 0 {
		w = 40
	}
	switch p := m.result.Preview.(type) {
	case api.MarkdownPreview:
		return m.renderer.Markdown(p.Markdown)
	case api.TablePreview:
		return renderGrid(p.Table, w)
	case api.SlidesPreview:
		return slideFrames(p.Slides, w)
	case api.DocumentPreview:
		return m.renderer.Markdown("```html\n" + strings.TrimRight(p.HTML, "\n") + "\n```")
	case api.TextPreview:
		return wordwrap.String(p.Text, w)
	case api.EmptyPreview:
		return faintStyle.Render("nothing to convert: " + p.Reason)
	default:
		return ""
	}
}

// cycleKind locks the current detected kind first, then walks the ring,
// and finally returns to auto-detection.
func (m *model) cycleKind() string {
	if !m.kindLock {
		m.kindLock = true
		return "kind locked: " + m.kindSel.String()
	}
	for i, k := range kindRing {
		if k != m.kindSel {
			continue
		}
		if i == len(kindRing)-1 {
			m.kindLock = false
			return "kind: auto"
		}
		m.kindSel = kindRing[i+1]
		return "kind: " + m.kindSel.String()
	}
	m.kindSel = kindRing[0]
	return "kind: " + m.kindSel.String()
}

func (m *model) loadNextSample() tea.Cmd {
	if len(m.samples) == 0 {
		return m.setStatus("no samples embedded")
	}
	s := m.samples[m.sampleIdx%len(m.samples)]
	m.sampleIdx++
	text, err := sampledata.Text(s)
	if err != nil {
		return m.setStatus(fmt.Sprintf("sample load failed: %v", err))
	}
	m.source = s.File
	m.kindLock = false
	m.input.SetValue(text)
	m.reconvert()
	return m.setStatus("loaded sample " + s.Name)
}

func (m *model) defaultSavePath() string {
	name := download.NameFor(m.result, m.dir, m.source)
	if m.outDir == "" || m.outDir == "." {
		return name
	}
	return filepath.Join(m.outDir, name)
}

// setStatus shows a transient status message; the sequence number keeps
// an older clear timer from wiping a newer message.
func (m *model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return clearStatusCmd(m.statusSeq)
}

var (
	faintStyle     = lipgloss.NewStyle().Faint(true)
	focusedBorder  = lipgloss.Color("63")
	blurredBorder  = lipgloss.Color("240")
	headerKeyStyle = lipgloss.NewStyle().Bold(true)
)

func (m *model) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	leftW, rightW := m.paneWidths()
	paneH := max(3, m.height-4)

	m.input.SetWidth(leftW)
	m.input.SetHeight(paneH)
	m.preview.Width = rightW
	m.preview.Height = paneH
	m.renderer.Resize(rightW)
	m.preview.SetContent(m.previewContent())
}

func (m *model) paneWidths() (int, int) {
	// Two panes, each wrapped in a one-cell border.
	avail := m.width - 4
	left := avail / 2
	right := avail - left
	if left < 10 {
		left = 10
	}
	if right < 10 {
		right = 10
	}
	return left, right
}

func (m model) renderHeader() string {
	source := m.source
	if source == "" {
		source = "(scratch)"
	}
	kindLabel := m.kindSel.String()
	if !m.kindLock {
		kindLabel += " (auto)"
	}
	var flow string
	if m.dir == api.ToMarkdown {
		flow = kindLabel + " → markdown"
	} else {
		flow = "markdown → " + kindLabel
	}
	left := " " + headerKeyStyle.Render(source) + "  " + flow
	right := "saves as " + download.NameFor(m.result, m.dir, m.source) + " "

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + faintStyle.Render(right)
}

func (m model) renderFooter() string {
	left := " tab=preview • ctrl+d=direction • ctrl+k=kind • ctrl+n=sample • ctrl+s=save • ctrl+o=output • ctrl+e=export • ctrl+q=quit"

	var right string
	if m.status != "" {
		right = m.status + " "
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return faintStyle.Render(left) + strings.Repeat(" ", space) + right
}

func (m model) View() string {
	if m.width < 40 || m.height < 8 {
		return "terminal too small for preview\n"
	}

	leftBorder, rightBorder := blurredBorder, blurredBorder
	if m.focusRight {
		rightBorder = focusedBorder
	} else {
		leftBorder = focusedBorder
	}
	leftW, rightW := m.paneWidths()
	paneH := max(3, m.height-4)

	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(leftBorder).
		Width(leftW).
		Height(paneH)
	rightBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(rightBorder).
		Width(rightW).
		Height(paneH)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		leftBox.Render(m.input.View()),
		rightBox.Render(m.preview.View()),
	)

	base := m.renderHeader() + "\n" + panes + "\n" + m.renderFooter()

	if m.saveModal != nil {
		return composeOverlay(base, m.saveModal.View(), m.width, m.height)
	}
	if m.outputModal != nil {
		return composeOverlay(base, m.outputModal.View(), m.width, m.height)
	}
	return base
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
