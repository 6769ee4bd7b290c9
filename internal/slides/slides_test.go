package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroranest/markbridge/pkg/api"
)

func TestParseOutline(t *testing.T) {
	titles := DefaultTitles()

	t.Run("single segment", func(t *testing.T) {
		got := ParseOutline("Title\nbullet", titles)
		require.Len(t, got, 1)
		assert.Equal(t, "Title", got[0].Title)
		assert.Equal(t, []string{"bullet"}, got[0].Bullets)
	})

	t.Run("blank line separates slides", func(t *testing.T) {
		got := ParseOutline("One\n- a\n\nTwo\n- b\n- c", titles)
		require.Len(t, got, 2)
		assert.Equal(t, api.Slide{Title: "One", Bullets: []string{"a"}}, got[0])
		assert.Equal(t, api.Slide{Title: "Two", Bullets: []string{"b", "c"}}, got[1])
	})

	t.Run("markers stripped once", func(t *testing.T) {
		got := ParseOutline("T\n- a\n* b\n• c\n1. d\n2) e", titles)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got[0].Bullets)
	})

	t.Run("crlf normalized", func(t *testing.T) {
		got := ParseOutline("One\r\n- a\r\n\r\nTwo", titles)
		require.Len(t, got, 2)
	})

	t.Run("headerless segment gets numbered fallback", func(t *testing.T) {
		got := ParseOutline("One\n\n \n- orphan", titles)
		require.Len(t, got, 2)
		assert.Equal(t, "Slide 2", got[1].Title)
		assert.Equal(t, []string{"orphan"}, got[1].Bullets)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, ParseOutline("", titles))
		assert.Nil(t, ParseOutline(" \n \n", titles))
	})

	t.Run("custom fallback pattern", func(t *testing.T) {
		custom := Titles{Fallback: "第%d页", Default: "概览"}
		got := ParseOutline("One\n\n \n- x", custom)
		require.Len(t, got, 2)
		assert.Equal(t, "第2页", got[1].Title)
	})

	t.Run("fallback without verb appends number", func(t *testing.T) {
		custom := Titles{Fallback: "Page", Default: "Overview"}
		assert.Equal(t, "Page 3", custom.Numbered(3))
	})
}

func TestToMarkdown(t *testing.T) {
	sl := []api.Slide{
		{Title: "Intro", Bullets: []string{"hello"}},
		{Title: "Plan", Bullets: []string{"a", "b"}},
	}
	want := "# Intro\n- hello\n\n## Plan\n- a\n- b"
	assert.Equal(t, want, ToMarkdown(sl))
	assert.Equal(t, "", ToMarkdown(nil))
}

func TestToOutline(t *testing.T) {
	sl := []api.Slide{
		{Title: "Intro", Bullets: []string{"hello"}},
		{Title: "Plan", Bullets: []string{"a"}},
	}
	assert.Equal(t, "Intro\n- hello\n\nPlan\n- a", ToOutline(sl))
}

func TestFromMarkdown(t *testing.T) {
	titles := DefaultTitles()

	t.Run("heading starts slide", func(t *testing.T) {
		got := FromMarkdown("# T\n- a\n- b", titles)
		require.Len(t, got, 1)
		assert.Equal(t, api.Slide{Title: "T", Bullets: []string{"a", "b"}}, got[0])
	})

	t.Run("multiple slides", func(t *testing.T) {
		got := FromMarkdown("# One\n- a\n## Two\n- b", titles)
		require.Len(t, got, 2)
		assert.Equal(t, "Two", got[1].Title)
	})

	t.Run("bullets before heading open default slide", func(t *testing.T) {
		got := FromMarkdown("- stray\n# Real", titles)
		require.Len(t, got, 2)
		assert.Equal(t, "Overview", got[0].Title)
		assert.Equal(t, []string{"stray"}, got[0].Bullets)
	})

	t.Run("plain lines append verbatim", func(t *testing.T) {
		got := FromMarkdown("# T\nspeaker note", titles)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"speaker note"}, got[0].Bullets)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, FromMarkdown("", titles))
	})
}

func TestOutlineRoundTrip(t *testing.T) {
	src := "Intro\n- hello\n\nPlan\n- a\n- b"
	first := ParseOutline(src, DefaultTitles())
	second := ParseOutline(ToOutline(first), DefaultTitles())
	assert.Equal(t, first, second)
}
