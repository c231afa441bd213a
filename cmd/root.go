package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/k6md/internal/config"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	rootCmd = &cobra.Command{
		Use:   "k6md",
		Short: "k6md - convert k6 results to Markdown reports",
		Long: `k6md converts k6 JSON output (handleSummary documents or --out json
event logs) into human-readable Markdown reports.

Run without arguments to be prompted for the input and output paths, or use
the convert subcommand for scripted use.`,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()

	InitLogger()
}

// InitLogger initializes the shared logger from the LOG_LEVEL environment
// variable, defaulting to info.
func InitLogger() {
	Logger = logrus.New()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Printf("Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// applyLogLevel updates the shared logger from the loaded configuration, so
// a log_level set in .k6md.yaml takes effect alongside the LOG_LEVEL env
// var handled by InitLogger.
func applyLogLevel(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		Logger.WithField("log_level", cfg.LogLevel).Warn("Invalid configured log level, keeping current")
		return
	}
	Logger.SetLevel(level)
}
