// Package main provides the phil CLI entry point.
package main

import (
	"os"

	"github.com/hermanshamus/Phil/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
