package main

import (
	"os"

	"github.com/esbmc/vscode-esbmc/cmd/esbmc-flags/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
