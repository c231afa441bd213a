// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = ".k6md.yaml"

// Config holds the application configuration.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	NoColor   bool   `yaml:"no_color"`
	OutputExt string `yaml:"output_extension"`
}

// Load reads configuration from the optional .k6md.yaml file, then
// overrides from environment variables (a .env file is honored if present).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:  "info",
		OutputExt: ".md",
	}

	if data, err := os.ReadFile(FileName); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", FileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading %s: %w", FileName, err)
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.OutputExt = getEnv("K6MD_OUTPUT_EXT", cfg.OutputExt)

	if raw := os.Getenv("K6MD_NO_COLOR"); raw != "" {
		noColor, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid K6MD_NO_COLOR: %w", err)
		}
		cfg.NoColor = noColor
	}

	if !strings.HasPrefix(cfg.OutputExt, ".") {
		cfg.OutputExt = "." + cfg.OutputExt
	}

	return cfg, nil
}

// OutputPath derives the default report path for an input file by swapping
// its extension for the configured one.
func (c *Config) OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + c.OutputExt
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
