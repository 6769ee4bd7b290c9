// Package kind classifies input content and owns the channel registry:
// which file extensions map to which conversion kind, and what format a
// converted result saves as.
package kind

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/auroranest/markbridge/pkg/api"
)

var (
	bulletLineRe = regexp.MustCompile(`^[-*•]\s+\S`)
	pipeRowRe    = regexp.MustCompile(`^\|.*\|$`)
)

// markdownExts is checked before any channel.
var markdownExts = []string{"md", "markdown"}

// Detector classifies content against a channel registry, optionally
// with config-supplied extension overrides. Use NewDetector.
type Detector struct {
	channels []Channel
}

// NewDetector copies the built-in registry and replaces a channel's
// extension set where overrides has a non-empty entry for its kind.
func NewDetector(overrides map[api.Kind][]string) *Detector {
	chs := Channels()
	for i := range chs {
		if exts := overrides[chs[i].Kind]; len(exts) > 0 {
			chs[i].Extensions = exts
		}
	}
	return &Detector{channels: chs}
}

// Detect classifies content by file extension first, then by content
// heuristics. Markdown extensions win outright; otherwise each channel's
// extension set is checked in declaration order. Names without a
// matching extension (including .txt) fall through to Heuristics, so
// plain text is classified by what it contains rather than what it is
// called.
func (d *Detector) Detect(name, content string) api.Kind {
	if ext := extOf(name); ext != "" {
		for _, e := range markdownExts {
			if e == ext {
				return api.KindMarkdown
			}
		}
		for _, ch := range d.channels {
			for _, e := range ch.Extensions {
				if e == ext {
					return ch.Kind
				}
			}
		}
	}
	return Heuristics(content)
}

// Detect classifies with the built-in registry and no overrides.
func Detect(name, content string) api.Kind {
	return NewDetector(nil).Detect(name, content)
}

// Heuristics is the extension-free content classifier. Priority is
// fixed: a leading # or any pipe-delimited row means markdown; a high
// share of comma/tab lines means a table; a bullet line followed later
// by a blank line means a slide outline; anything else is plain text.
// Ambiguous inputs resolve by this order, deliberately.
func Heuristics(content string) api.Kind {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return api.KindText
	}
	if strings.HasPrefix(trimmed, "#") || hasPipedRow(trimmed) {
		return api.KindMarkdown
	}
	if looksDelimited(trimmed) {
		return api.KindExcel
	}
	if bulletThenBlank(trimmed) {
		return api.KindPPT
	}
	return api.KindText
}

func extOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

func hasPipedRow(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if pipeRowRe.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// looksDelimited wants at least two non-blank lines with commas or tabs
// on at least four lines in five.
func looksDelimited(content string) bool {
	var total, delimited int
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if strings.ContainsAny(line, ",\t") {
			delimited++
		}
	}
	return total >= 2 && delimited*5 >= total*4
}

func bulletThenBlank(content string) bool {
	seen := false
	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		if seen && t == "" {
			return true
		}
		if bulletLineRe.MatchString(t) {
			seen = true
		}
	}
	return false
}
