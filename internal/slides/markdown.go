package slides

import (
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

// ToMarkdown renders slides as Markdown: the first slide title as a
// level-1 heading, later titles as level-2, each followed by its
// bullets, with a blank line between slides.
func ToMarkdown(sl []api.Slide) string {
	parts := make([]string, 0, len(sl))
	for i, s := range sl {
		var b strings.Builder
		if i == 0 {
			b.WriteString("# ")
		} else {
			b.WriteString("## ")
		}
		b.WriteString(s.Title)
		for _, bullet := range s.Bullets {
			b.WriteString("\n- ")
			b.WriteString(bullet)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

// ToOutline renders slides in the plain outline form consumed by
// ParseOutline: a bare title line plus `- bullet` lines, slides
// separated by a blank line.
func ToOutline(sl []api.Slide) string {
	parts := make([]string, 0, len(sl))
	for _, s := range sl {
		var b strings.Builder
		b.WriteString(s.Title)
		for _, bullet := range s.Bullets {
			b.WriteString("\n- ")
			b.WriteString(bullet)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

// FromMarkdown scans non-blank Markdown lines into slides: a heading
// starts a new slide, bullet and numbered lines append a bullet (with
// the marker stripped), and any other line appends verbatim. Bullets
// arriving before any heading open an implicit slide carrying the
// default title. The trailing open slide is pushed at end of input.
func FromMarkdown(md string, titles Titles) []api.Slide {
	var (
		out []api.Slide
		cur *api.Slide
	)
	push := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}
	open := func() *api.Slide {
		if cur == nil {
			cur = &api.Slide{Title: titles.Default}
		}
		return cur
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case headingRe.MatchString(line):
			push()
			title := strings.TrimSpace(headingRe.FindStringSubmatch(line)[1])
			if title == "" {
				title = titles.Numbered(len(out) + 1)
			}
			cur = &api.Slide{Title: title}
		case markerRe.MatchString(line):
			s := open()
			s.Bullets = append(s.Bullets, markerRe.ReplaceAllString(line, ""))
		default:
			s := open()
			s.Bullets = append(s.Bullets, line)
		}
	}
	push()
	return out
}
