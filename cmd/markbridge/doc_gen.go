//go:build ignore
// +build ignore

package main

import (
	"log"

	markbridge "github.com/auroranest/markbridge/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := markbridge.NewRootCmd()

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "MARKBRIDGE",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
