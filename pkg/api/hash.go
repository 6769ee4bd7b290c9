package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the result content.
// It covers Kind, Text and the preview variant tag, so two results
// hash equal exactly when their saved form would be identical.
func (r Result) Hash() string {
	h := blake3.New()

	// Null-byte delimiters keep field boundaries unambiguous.
	h.Write([]byte(r.Kind))
	h.Write([]byte{0})

	h.Write([]byte(r.Text))
	h.Write([]byte{0})

	if r.Preview != nil {
		h.Write([]byte(r.Preview.Variant()))
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

// ShortHash returns the first n hex characters of Hash, used to name
// outputs of anonymous (stdin or pasted) input.
func (r Result) ShortHash(n int) string {
	s := r.Hash()
	if n <= 0 || n > len(s) {
		return s
	}
	return s[:n]
}
