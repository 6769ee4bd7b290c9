// Package htmldoc renders Markdown into the HTML used for Word-bound
// output: a line-oriented scanner producing a fragment, plus a wrapper
// that builds a Word-compatible standalone document around it.
package htmldoc

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	bulletRe  = regexp.MustCompile(`^[-*•]\s+(.*)$`)
	orderedRe = regexp.MustCompile(`^\d+[.)]\s+(.*)$`)

	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	codeRe   = regexp.MustCompile("`(.+?)`")
	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

type scanState int

const (
	stateNormal scanState = iota
	stateUnordered
	stateOrdered
	stateCode
)

// Render converts Markdown to an HTML fragment. The scanner holds one
// of four states (normal, unordered list, ordered list, code block).
// A ``` fence toggles code state; fenced lines are accumulated verbatim,
// HTML-escaped, and emitted as one <pre><code> block on close. Outside
// code, headings and paragraphs close any open list, bullet and numbered
// lines open or continue the matching list (closing the other kind
// first), and blank lines close lists. Open structures are closed at end
// of input. Inline bold, italic, code spans and links are applied after
// escaping.
func Render(md string) string {
	var (
		out   []string
		state = stateNormal
		code  []string
	)

	closeList := func() {
		switch state {
		case stateUnordered:
			out = append(out, "</ul>")
		case stateOrdered:
			out = append(out, "</ol>")
		}
		state = stateNormal
	}
	flushCode := func() {
		out = append(out, "<pre><code>"+escape(strings.Join(code, "\n"))+"</code></pre>")
		code = nil
		state = stateNormal
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "```") {
			if state == stateCode {
				flushCode()
			} else {
				closeList()
				state = stateCode
			}
			continue
		}
		if state == stateCode {
			code = append(code, raw)
			continue
		}

		switch {
		case line == "":
			closeList()
		case headingRe.MatchString(line):
			closeList()
			m := headingRe.FindStringSubmatch(line)
			level := len(m[1])
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", level, inline(m[2]), level))
		case bulletRe.MatchString(line):
			if state == stateOrdered {
				out = append(out, "</ol>")
				state = stateNormal
			}
			if state != stateUnordered {
				out = append(out, "<ul>")
				state = stateUnordered
			}
			out = append(out, "<li>"+inline(bulletRe.FindStringSubmatch(line)[1])+"</li>")
		case orderedRe.MatchString(line):
			if state == stateUnordered {
				out = append(out, "</ul>")
				state = stateNormal
			}
			if state != stateOrdered {
				out = append(out, "<ol>")
				state = stateOrdered
			}
			out = append(out, "<li>"+inline(orderedRe.FindStringSubmatch(line)[1])+"</li>")
		default:
			closeList()
			out = append(out, "<p>"+inline(line)+"</p>")
		}
	}

	if state == stateCode {
		flushCode()
	} else {
		closeList()
	}
	return strings.Join(out, "\n")
}

// inline escapes the raw text first so generated tags are never
// re-escaped, then applies span formatting.
func inline(s string) string {
	s = escape(s)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = codeRe.ReplaceAllString(s, "<code>$1</code>")
	s = linkRe.ReplaceAllString(s, `<a href="$2" target="_blank" rel="noopener">$1</a>`)
	return s
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
