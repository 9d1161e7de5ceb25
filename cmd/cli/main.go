// Package main is the entry point for the moverz CLI.
package main

import (
	"os"

	"moverz/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
