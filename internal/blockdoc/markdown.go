package blockdoc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// ToMarkdown renders blocks to canonical Markdown: `#` headings,
// `**label:** text` for labeled paragraphs, `- item` / `N. item` list
// lines. Every block is followed by a blank line; longer blank runs are
// collapsed to a single blank line and the result is trimmed.
func ToMarkdown(blocks []api.Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch v := blk.(type) {
		case api.Heading:
			level := v.Level
			if level < 1 {
				level = 1
			}
			if level > 6 {
				level = 6
			}
			b.WriteString(strings.Repeat("#", level))
			b.WriteString(" ")
			b.WriteString(v.Text)
			b.WriteString("\n\n")
		case api.Paragraph:
			if v.Label != "" {
				b.WriteString("**")
				b.WriteString(v.Label)
				b.WriteString(":** ")
			}
			b.WriteString(v.Text)
			b.WriteString("\n\n")
		case api.List:
			for i, item := range v.Items {
				if v.Ordered {
					b.WriteString(strconv.Itoa(i + 1))
					b.WriteString(". ")
				} else {
					b.WriteString("- ")
				}
				b.WriteString(item)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(blankRunRe.ReplaceAllString(b.String(), "\n\n"))
}
