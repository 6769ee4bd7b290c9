package tui

import (
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

// composeOverlay centers fg on top of a dimmed base view.
func composeOverlay(base, fg string, termW, termH int) string {
	if termW <= 0 {
		termW = 80
	}
	if termH <= 0 {
		termH = 24
	}
	overlayW := lipglossv2.Width(fg)
	overlayH := lipglossv2.Height(fg)

	// Center target position.
	x := (termW - overlayW) / 2
	y := (termH - overlayH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	// Whole-view dim of the background
	dimBase := lipglossv2.NewStyle().Faint(true).Render(base)

	baseLayer := lipglossv2.NewLayer(dimBase).
		Width(termW).
		Height(termH)
	fgLayer := lipglossv2.NewLayer(fg).
		Width(overlayW).
		Height(overlayH).
		X(x).
		Y(y)

	return lipglossv2.NewCanvas(baseLayer, fgLayer).Render()
}
