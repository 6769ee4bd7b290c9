package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownRenders(t *testing.T) {
	r := New("notty", 40)
	out := r.Markdown("# Release Notes\n\nsome *styled* text")
	assert.Contains(t, out, "Release Notes")
	assert.Contains(t, out, "styled")
}

func TestMarkdownUnknownStyleFallsBack(t *testing.T) {
	r := New("no-such-style", 40)
	md := "# unchanged"
	assert.Equal(t, md, r.Markdown(md))
}

func TestResizeRewraps(t *testing.T) {
	r := New("notty", 200)
	long := strings.Repeat("word ", 30)

	wide := r.Markdown(long)
	r.Resize(20)
	narrow := r.Markdown(long)

	wideLines := strings.Count(wide, "\n")
	narrowLines := strings.Count(narrow, "\n")
	assert.Greater(t, narrowLines, wideLines)
}

func TestNewDefaults(t *testing.T) {
	r := New("", 0)
	assert.Equal(t, "dracula", r.style)
	assert.Equal(t, 80, r.wrap)
}
