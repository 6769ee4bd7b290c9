// Package blockdoc splits Word-like free text into typed blocks
// (headings, optionally labeled paragraphs, lists) and renders block
// sequences back to canonical Markdown.
package blockdoc

import (
	"regexp"
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	bulletRe  = regexp.MustCompile(`^[-*•]\s+(.*)$`)
	orderedRe = regexp.MustCompile(`^\d+[.)]\s+(.*)$`)
	// A label line has 2+ non-colon characters before the first colon;
	// the fullwidth colon counts too. First match wins, so prose like
	// "时间: 10:00" labels on the first colon. Downstream round-trip
	// behavior depends on this exact rule.
	labelRe = regexp.MustCompile(`^([^:：]{2,})[:：](.*)$`)
)

type listState int

const (
	listNone listState = iota
	listUnordered
	listOrdered
)

// Parse scans trimmed lines in a single pass and emits blocks in input
// order. Per line, first match wins: blank, heading, bullet, numbered,
// label, paragraph text. Blank lines flush the open paragraph and list;
// switching between list kinds flushes the previous list so interleaved
// markers never merge. Paragraph text accumulates across lines and is
// joined with single spaces. End of input flushes whatever is open.
func Parse(text string) []api.Block {
	var (
		blocks []api.Block
		para   []string
		list   listState
		items  []string
	)

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, api.Paragraph{Text: strings.Join(para, " ")})
			para = nil
		}
	}
	flushList := func() {
		if list != listNone {
			blocks = append(blocks, api.List{Ordered: list == listOrdered, Items: items})
			list = listNone
			items = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			flushPara()
			flushList()
		case headingRe.MatchString(line):
			flushPara()
			flushList()
			m := headingRe.FindStringSubmatch(line)
			blocks = append(blocks, api.Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])})
		case bulletRe.MatchString(line):
			flushPara()
			if list == listOrdered {
				flushList()
			}
			list = listUnordered
			items = append(items, strings.TrimSpace(bulletRe.FindStringSubmatch(line)[1]))
		case orderedRe.MatchString(line):
			flushPara()
			if list == listUnordered {
				flushList()
			}
			list = listOrdered
			items = append(items, strings.TrimSpace(orderedRe.FindStringSubmatch(line)[1]))
		case labelRe.MatchString(line):
			flushPara()
			flushList()
			m := labelRe.FindStringSubmatch(line)
			blocks = append(blocks, api.Paragraph{Label: strings.TrimSpace(m[1]), Text: strings.TrimSpace(m[2])})
		default:
			flushList()
			para = append(para, line)
		}
	}
	flushPara()
	flushList()
	return blocks
}
