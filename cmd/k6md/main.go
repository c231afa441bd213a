// Package main is the entry point for the k6md application
package main

import (
	"os"

	"github.com/ethpandaops/k6md/cmd"
)

func main() {
	// No arguments at all drops into the interactive prompts; anything
	// else goes through the regular CLI.
	if len(os.Args) == 1 {
		cmd.ExecuteInteractive()
		return
	}

	cmd.Execute()
}
