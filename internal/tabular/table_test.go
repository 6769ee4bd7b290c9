package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroranest/markbridge/pkg/api"
)

func TestParse(t *testing.T) {
	t.Run("comma separated", func(t *testing.T) {
		got := Parse("a,b,c\n1,2,3")
		require.NotNil(t, got)
		assert.Equal(t, []string{"a", "b", "c"}, got.Headers)
		assert.Equal(t, [][]string{{"1", "2", "3"}}, got.Rows)
	})

	t.Run("tab separated", func(t *testing.T) {
		got := Parse("a\tb\n1\t2")
		require.NotNil(t, got)
		assert.Equal(t, []string{"a", "b"}, got.Headers)
		assert.Equal(t, [][]string{{"1", "2"}}, got.Rows)
	})

	t.Run("quoted cells keep delimiters", func(t *testing.T) {
		got := Parse("name,note\n\"Smith, Jo\",fine")
		require.NotNil(t, got)
		assert.Equal(t, [][]string{{"Smith, Jo", "fine"}}, got.Rows)
	})

	t.Run("short rows padded to widest", func(t *testing.T) {
		got := Parse("a,b,c\n1\n1,2,3,4")
		require.NotNil(t, got)
		assert.Len(t, got.Headers, 4)
		for _, row := range got.Rows {
			assert.Len(t, row, 4)
		}
		assert.Equal(t, []string{"1", "", "", ""}, got.Rows[0])
	})

	t.Run("blank lines dropped", func(t *testing.T) {
		got := Parse("\na,b\n\n1,2\n\n")
		require.NotNil(t, got)
		assert.Len(t, got.Rows, 1)
	})

	t.Run("cjk content", func(t *testing.T) {
		got := Parse("模块,负责人\n产品文档,王一")
		require.NotNil(t, got)
		assert.Equal(t, []string{"模块", "负责人"}, got.Headers)
		assert.Equal(t, [][]string{{"产品文档", "王一"}}, got.Rows)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Parse(""))
		assert.Nil(t, Parse("\n  \n"))
	})
}

func TestToMarkdown(t *testing.T) {
	got := ToMarkdown(Parse("模块,负责人\n产品文档,王一"))
	assert.Equal(t, "| 模块 | 负责人 |\n| --- | --- |\n| 产品文档 | 王一 |", got)

	assert.Equal(t, "", ToMarkdown(nil))
}

func TestToCSV(t *testing.T) {
	t.Run("plain cells stay bare", func(t *testing.T) {
		got := ToCSV(&api.TableData{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}})
		assert.Equal(t, "a,b\n1,2", got)
	})

	t.Run("comma and quote cells wrapped", func(t *testing.T) {
		got := ToCSV(&api.TableData{
			Headers: []string{"name", "note"},
			Rows:    [][]string{{`Smith, Jo`, `said "hi"`}},
		})
		assert.Equal(t, "name,note\n\"Smith, Jo\",\"said \"\"hi\"\"\"", got)
	})

	t.Run("newline cells wrapped", func(t *testing.T) {
		got := ToCSV(&api.TableData{Headers: []string{"a"}, Rows: [][]string{{"x\ny"}}})
		assert.Equal(t, "a\n\"x\ny\"", got)
	})

	assert.Equal(t, "", ToCSV(nil))
}

func TestCSVRoundTrip(t *testing.T) {
	// Cell values survive a CSV round trip, modulo the quote toggle.
	inputs := []string{
		"a,b,c\n1,2,3\n4,5,6",
		"模块,负责人\n产品文档,王一",
		"name,note\n\"Smith, Jo\",fine",
	}
	for _, in := range inputs {
		first := Parse(in)
		require.NotNil(t, first)
		second := Parse(ToCSV(first))
		require.NotNil(t, second)
		assert.Equal(t, first.Headers, second.Headers)
		assert.Equal(t, first.Rows, second.Rows)
	}
}
