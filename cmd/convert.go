package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/k6md/internal/config"
	"github.com/ethpandaops/k6md/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert INPUT [OUTPUT]",
	Short: "Convert a k6 results file to a Markdown report",
	Long: `Convert a k6 results file to a Markdown report.

The input may be either a handleSummary JSON document or a newline-delimited
--out json event log; the format is detected automatically. The report is
written next to the input with a .md extension unless OUTPUT is given.

Examples:
  k6md convert results.json
  k6md convert results.json report.md`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		output := ""
		if len(args) == 2 {
			output = args[1]
		}

		return runConvert(cfg, args[0], output)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// runConvert reads the input file, runs the conversion pipeline, and writes
// the report. Status notices go to stderr so stdout stays clean for piping.
func runConvert(cfg *config.Config, input, output string) error {
	applyLogLevel(cfg)

	if output == "" {
		output = cfg.OutputPath(input)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", input, err)
	}

	svc := convert.New(Logger)

	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start converter: %w", err)
	}
	defer func() {
		if err := svc.Stop(); err != nil {
			Logger.WithError(err).Warn("Failed to stop converter")
		}
	}()

	report, detected, err := svc.Convert(ctx, string(content))
	if err != nil {
		return fmt.Errorf("failed to convert %q: %w", input, err)
	}

	color.New(color.FgHiBlack).Fprintf(os.Stderr, "Detected format: %s\n", detected)

	if err := os.WriteFile(output, []byte(report), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", output, err)
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, "Report written to %s\n", output)

	return nil
}
