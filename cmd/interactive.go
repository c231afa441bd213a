// Package cmd contains CLI command definitions
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ethpandaops/k6md/internal/config"
	"github.com/ethpandaops/k6md/internal/interactive"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for the input and output paths",
	Long:  `Prompts for the paths instead of taking them as arguments; this is also what running k6md with no arguments does.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// ExecuteInteractive runs the prompt-driven flow directly, used when the
// binary is invoked without any arguments.
func ExecuteInteractive() {
	if err := runInteractive(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	input, err := interactive.AskInputPath()
	if err != nil {
		if errors.Is(err, interactive.ErrExit) {
			return nil
		}
		return err
	}

	output, err := interactive.AskOutputPath(cfg.OutputPath(input))
	if err != nil {
		if errors.Is(err, interactive.ErrExit) {
			return nil
		}
		return err
	}

	if _, err := os.Stat(output); err == nil {
		if !interactive.Confirm(fmt.Sprintf("%s already exists, overwrite?", output)) {
			fmt.Println("Canceled.")
			return nil
		}
	}

	return runConvert(cfg, input, output)
}
