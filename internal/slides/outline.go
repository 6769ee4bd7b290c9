// Package slides parses PowerPoint-like plain outlines into slide
// sequences and converts slides to and from Markdown.
package slides

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

var (
	segmentRe = regexp.MustCompile(`\n{2,}`)
	markerRe  = regexp.MustCompile(`^([-*•]|\d+[.)])\s+`)
	headingRe = regexp.MustCompile(`^#{1,6}\s+(.*)$`)
)

// Titles carries the placeholder texts substituted when a slide has no
// usable title. The texts are presentation details and configurable;
// the non-empty-title guarantee is not.
type Titles struct {
	// Fallback names headerless outline segments. A %d verb receives
	// the 1-based slide number.
	Fallback string
	// Default names the implicit first slide when Markdown starts with
	// bullets before any heading.
	Default string
}

// DefaultTitles returns the stock placeholder texts.
func DefaultTitles() Titles {
	return Titles{Fallback: "Slide %d", Default: "Overview"}
}

// Numbered renders the fallback title for the n-th slide. Patterns
// without a %d verb get the number appended so titles stay unique.
func (t Titles) Numbered(n int) string {
	if strings.Contains(t.Fallback, "%d") {
		return fmt.Sprintf(t.Fallback, n)
	}
	return strings.TrimSpace(t.Fallback) + " " + strconv.Itoa(n)
}

// ParseOutline splits text into blank-line-delimited segments, one
// slide each: the first line is the title (or a numbered fallback when
// blank), remaining non-blank lines become bullets with a single
// leading bullet or number marker stripped. Returns nil for empty
// input.
func ParseOutline(text string, titles Titles) []api.Slide {
	norm := strings.ReplaceAll(text, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")
	norm = strings.TrimSpace(norm)
	if norm == "" {
		return nil
	}

	var out []api.Slide
	for i, seg := range segmentRe.Split(norm, -1) {
		lines := strings.Split(seg, "\n")
		title := strings.TrimSpace(lines[0])
		if title == "" {
			title = titles.Numbered(i + 1)
		}
		var bullets []string
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			bullets = append(bullets, markerRe.ReplaceAllString(line, ""))
		}
		out = append(out, api.Slide{Title: title, Bullets: bullets})
	}
	return out
}
