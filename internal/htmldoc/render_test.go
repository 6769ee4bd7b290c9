package htmldoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("headings", func(t *testing.T) {
		assert.Equal(t, "<h1>Title</h1>", Render("# Title"))
		assert.Equal(t, "<h3>Sub</h3>", Render("### Sub"))
	})

	t.Run("paragraphs", func(t *testing.T) {
		assert.Equal(t, "<p>one</p>\n<p>two</p>", Render("one\n\ntwo"))
	})

	t.Run("unordered list", func(t *testing.T) {
		want := "<ul>\n<li>a</li>\n<li>b</li>\n</ul>"
		assert.Equal(t, want, Render("- a\n- b"))
	})

	t.Run("ordered list", func(t *testing.T) {
		want := "<ol>\n<li>one</li>\n<li>two</li>\n</ol>"
		assert.Equal(t, want, Render("1. one\n2. two"))
	})

	t.Run("list kind switch closes other list", func(t *testing.T) {
		want := "<ul>\n<li>a</li>\n</ul>\n<ol>\n<li>b</li>\n</ol>"
		assert.Equal(t, want, Render("- a\n1. b"))
	})

	t.Run("heading closes open list", func(t *testing.T) {
		want := "<ul>\n<li>a</li>\n</ul>\n<h2>Next</h2>"
		assert.Equal(t, want, Render("- a\n## Next"))
	})

	t.Run("code fence escapes only", func(t *testing.T) {
		want := "<pre><code>if a &lt; b {\n\t**not bold**\n}</code></pre>"
		assert.Equal(t, want, Render("```\nif a < b {\n\t**not bold**\n}\n```"))
	})

	t.Run("unclosed fence flushes at eof", func(t *testing.T) {
		got := Render("```\ndangling")
		assert.Equal(t, "<pre><code>dangling</code></pre>", got)
	})

	t.Run("unclosed list closes at eof", func(t *testing.T) {
		got := Render("- a")
		assert.True(t, strings.HasSuffix(got, "</ul>"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Render(""))
	})
}

func TestInline(t *testing.T) {
	t.Run("bold italic code", func(t *testing.T) {
		got := Render("**b** and *i* and `c`")
		assert.Equal(t, "<p><strong>b</strong> and <em>i</em> and <code>c</code></p>", got)
	})

	t.Run("links open in new tab", func(t *testing.T) {
		got := Render("[site](https://example.com)")
		assert.Equal(t, `<p><a href="https://example.com" target="_blank" rel="noopener">site</a></p>`, got)
	})

	t.Run("raw html is escaped before spans", func(t *testing.T) {
		got := Render("a <b> & **c**")
		assert.Equal(t, "<p>a &lt;b&gt; &amp; <strong>c</strong></p>", got)
	})
}

func TestDocument(t *testing.T) {
	doc := Document("Q3 Plan", "<h1>Q3 Plan</h1>")
	assert.Contains(t, doc, `<meta charset="utf-8">`)
	assert.Contains(t, doc, "<title>Q3 Plan</title>")
	assert.Contains(t, doc, "<h1>Q3 Plan</h1>")
	assert.Contains(t, doc, "urn:schemas-microsoft-com:office:word")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Plan", Title("intro\n\n# Plan\nbody", "Document"))
	assert.Equal(t, "Document", Title("no headings here", "Document"))
}
