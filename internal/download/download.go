// Package download writes conversion results to disk, the terminal
// equivalent of the browser demo's client-side download: the extension
// and MIME type come from the kind registry, anonymous inputs get
// content-hashed names, and a target that already holds identical
// content is left untouched.
package download

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/auroranest/markbridge/internal/kind"
	"github.com/auroranest/markbridge/pkg/api"
)

// NameFor derives the output file name. A known source name keeps its
// base with the save extension swapped in; anonymous input is named by
// a short content hash so the same content always lands in the same
// file.
func NameFor(res api.Result, dir api.Direction, srcName string) string {
	ext, _ := kind.SaveFormat(res.Kind, dir)
	base := strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName))
	if srcName == "" || base == "" || base == "." || base == string(filepath.Separator) {
		base = "markbridge-" + res.ShortHash(10)
	}
	return base + ext
}

// Save writes the result under outDir (default ".") using NameFor and
// reports the path written. skipped is true when the target already
// held identical content and nothing was written.
func Save(res api.Result, dir api.Direction, srcName, outDir string) (path string, skipped bool, err error) {
	if outDir == "" {
		outDir = "."
	}
	return saveTo(res, filepath.Join(outDir, NameFor(res, dir, srcName)))
}

// SaveAs writes the result to an explicit path.
func SaveAs(res api.Result, path string) (string, bool, error) {
	return saveTo(res, path)
}

func saveTo(res api.Result, path string) (string, bool, error) {
	if prev, err := os.ReadFile(path); err == nil && sum(prev) == sum([]byte(res.Text)) {
		return path, true, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", false, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(res.Text), 0o644); err != nil {
		return "", false, fmt.Errorf("write %s: %w", path, err)
	}
	return path, false, nil
}

func sum(b []byte) [32]byte {
	return blake3.Sum256(b)
}
