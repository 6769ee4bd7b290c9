//go:build mage

// Package main contains Mage build targets for markbridge developer
// tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "markbridge"
	cmdPkg  = "./cmd/markbridge"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs Vet and Test.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Docs regenerates the CLI reference pages under docs/.
func Docs() error {
	mg.Deps(mkDocDirs)
	return sh.RunV("go", "run", "cmd/markbridge/doc_gen.go")
}

// Corpus writes a deterministic bulk-conversion corpus to
// testdata/corpus.json.
func Corpus() error {
	if err := os.MkdirAll("testdata", 0o755); err != nil {
		return fmt.Errorf("creating testdata: %w", err)
	}
	out, err := sh.Output("go", "run", "./scripts")
	if err != nil {
		return fmt.Errorf("generate corpus: %w", err)
	}
	path := filepath.Join("testdata", "corpus.json")
	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binDir)
}

func mkDocDirs() error {
	for _, dir := range []string{"docs/markdown", "docs/man"} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
