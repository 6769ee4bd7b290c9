package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Hash(t *testing.T) {
	base := Result{
		Kind:    KindExcel,
		Text:    "| a | b |\n| --- | --- |\n| 1 | 2 |",
		Preview: TablePreview{Table: TableData{Headers: []string{"a", "b"}}},
	}

	t.Run("identical results produce identical hashes", func(t *testing.T) {
		r1 := base
		r2 := base
		assert.Equal(t, r1.Hash(), r2.Hash())
	})

	t.Run("different text produces different hashes", func(t *testing.T) {
		r2 := base
		r2.Text = "| a | b |\n| --- | --- |\n| 1 | 3 |"
		assert.NotEqual(t, base.Hash(), r2.Hash())
	})

	t.Run("different kind produces different hashes", func(t *testing.T) {
		r2 := base
		r2.Kind = KindWord
		assert.NotEqual(t, base.Hash(), r2.Hash())
	})

	t.Run("preview variant participates", func(t *testing.T) {
		r2 := base
		r2.Preview = SlidesPreview{}
		assert.NotEqual(t, base.Hash(), r2.Hash())
	})

	t.Run("preview payload does not participate", func(t *testing.T) {
		r2 := base
		r2.Preview = TablePreview{Table: TableData{Headers: []string{"x", "y", "z"}}}
		assert.Equal(t, base.Hash(), r2.Hash(), "Hash covers the variant tag, not the payload")
	})

	t.Run("field boundaries are unambiguous", func(t *testing.T) {
		r1 := Result{Kind: Kind("ab"), Text: "c"}
		r2 := Result{Kind: Kind("a"), Text: "bc"}
		assert.NotEqual(t, r1.Hash(), r2.Hash(), "Kind and Text must not blur together")
	})

	t.Run("nil preview differs from text preview", func(t *testing.T) {
		r1 := Result{Kind: KindText, Text: "x"}
		r2 := Result{Kind: KindText, Text: "x", Preview: TextPreview{Text: "x"}}
		assert.NotEqual(t, r1.Hash(), r2.Hash())
	})

	t.Run("hash is hex of 32 bytes", func(t *testing.T) {
		assert.Len(t, base.Hash(), 64)
	})
}

func TestResult_ShortHash(t *testing.T) {
	r := Result{Kind: KindExcel, Text: "a,b"}

	assert.Len(t, r.ShortHash(10), 10)
	assert.Equal(t, r.Hash()[:10], r.ShortHash(10))

	t.Run("out of range falls back to full hash", func(t *testing.T) {
		assert.Equal(t, r.Hash(), r.ShortHash(0))
		assert.Equal(t, r.Hash(), r.ShortHash(100))
	})
}
