// Package main is the entry point for the scratchpad CLI/TUI.
package main

import (
	"os"

	"github.com/watchfire-io/scratchpad/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
