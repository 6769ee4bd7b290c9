package main

import (
	"log"

	"github.com/auroranest/markbridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
