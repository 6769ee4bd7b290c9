// Package input reads conversion input from files, stdin or response
// bodies and normalizes it to plain UTF-8 text with \n line endings.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ErrBinary rejects inputs that cannot be treated as text.
var ErrBinary = errors.New("content looks binary")

// sniffWindow bounds the binary check, same idea as git's heuristic.
const sniffWindow = 8000

// ReadFile loads path and normalizes its content.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text, err := Normalize(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// ReadAll drains r and normalizes the bytes.
func ReadAll(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return Normalize(raw)
}

// Normalize decodes UTF-16 input by its BOM, strips a UTF-8 BOM,
// rejects binary-looking content, and canonicalizes line endings.
func Normalize(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		decoded, err := decodeUTF16(raw)
		if err != nil {
			return "", err
		}
		raw = decoded
	case bytes.HasPrefix(raw, bomUTF8):
		raw = raw[len(bomUTF8):]
	}
	if looksBinary(raw) {
		return "", ErrBinary
	}
	s := string(raw)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s, nil
}

func decodeUTF16(raw []byte) ([]byte, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, fmt.Errorf("decode utf-16: %w", err)
	}
	return out, nil
}

// looksBinary reports a NUL byte within the sniff window.
func looksBinary(raw []byte) bool {
	window := raw
	if len(window) > sniffWindow {
		window = window[:sniffWindow]
	}
	return bytes.IndexByte(window, 0) >= 0
}
