package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroranest/markbridge/pkg/api"
)

func TestPreviewMarkdownVariants(t *testing.T) {
	table := api.TableData{Headers: []string{"模块", "负责人"}, Rows: [][]string{{"产品文档", "王一"}}}
	sl := []api.Slide{{Title: "Roadmap", Bullets: []string{"Q1", "Q2"}}}

	cases := []struct {
		label string
		r     api.Result
		want  string
	}{
		{"markdown", api.Result{Preview: api.MarkdownPreview{Markdown: "# hi"}}, "# hi"},
		{"table", api.Result{Preview: api.TablePreview{Table: table}}, "| 模块 | 负责人 |"},
		{"slides", api.Result{Preview: api.SlidesPreview{Slides: sl}}, "# Roadmap"},
		{"document", api.Result{Preview: api.DocumentPreview{HTML: "<p>x</p>\n"}}, "```html\n<p>x</p>\n```"},
		{"text", api.Result{Preview: api.TextPreview{Text: "plain"}}, "plain"},
		{"empty", api.Result{Preview: api.EmptyPreview{Reason: "no table detected"}}, "> nothing to convert: no table detected"},
		{"nil preview", api.Result{Text: "fallback"}, "fallback"},
	}
	for _, tc := range cases {
		assert.Contains(t, PreviewMarkdown(tc.r), tc.want, tc.label)
	}
}

func TestWritePrettyResult(t *testing.T) {
	var buf bytes.Buffer
	r := api.Result{
		Kind:    api.KindExcel,
		Text:    "| a |\n| --- |\n| 1 |",
		Preview: api.MarkdownPreview{Markdown: "# Title\n\nbody"},
	}
	require.NoError(t, WritePrettyResult(&buf, r, "notty", 60))
	assert.Contains(t, buf.String(), "Title")
	assert.Contains(t, buf.String(), "body")
}

func TestWriteDetections(t *testing.T) {
	var buf bytes.Buffer
	ds := []Detection{
		{Name: "report.csv", Kind: api.KindExcel},
		{Name: "a\tb.txt", Kind: api.KindText},
	}
	require.NoError(t, WriteDetections(&buf, ds, true))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[1], "report.csv")
	assert.Contains(t, lines[1], "excel")
	assert.Contains(t, lines[2], "a\\tb.txt")
}

func TestWritePlainResultAddsNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlainResult(&buf, api.Result{Text: "no newline"}))
	assert.Equal(t, "no newline\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePlainResult(&buf, api.Result{Text: "has one\n"}))
	assert.Equal(t, "has one\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePlainResult(&buf, api.Result{}))
	assert.Empty(t, buf.String())
}

func TestWritePlainResultsSeparation(t *testing.T) {
	var buf bytes.Buffer
	rs := []api.Result{
		{Text: "first"},
		{}, // empty conversion adds nothing
		{Text: "second\n"},
	}
	require.NoError(t, WritePlainResults(&buf, rs))
	assert.Equal(t, "first\n\nsecond\n", buf.String())
}

func TestJSONStreamWriterArray(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONStreamWriter(&buf, false)
	require.NoError(t, jw.WriteResults([]api.Result{
		{Kind: api.KindExcel, Text: "a,b", Preview: api.TextPreview{Text: "a,b"}},
	}))
	require.NoError(t, jw.WriteResults([]api.Result{
		{Kind: api.KindText, Text: "x", Preview: api.TextPreview{Text: "x"}},
	}))
	require.NoError(t, jw.Close())

	require.True(t, json.Valid(buf.Bytes()), "stream output is not valid JSON: %s", buf.String())
	var got []api.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, api.KindExcel, got[0].Kind)
}

func TestJSONStreamWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONStreamWriter(&buf, true)
	require.NoError(t, jw.Close())
	assert.Equal(t, "[]\n", buf.String())
}

func TestNDJSONStreamWriterLines(t *testing.T) {
	var buf bytes.Buffer
	nw := NewNDJSONStreamWriter(&buf)
	require.NoError(t, nw.WriteResults([]api.Result{
		{Kind: api.KindText, Text: "one", Preview: api.TextPreview{Text: "one"}},
		{Kind: api.KindText, Text: "two", Preview: api.TextPreview{Text: "two"}},
	}))
	require.NoError(t, nw.Close())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "line is not valid JSON: %s", line)
	}
}
