// Package config loads redline's settings: built-in defaults, overridden by
// an optional .redline.yaml file, overridden by environment variables —
// CLI flags (applied by cmd/redline itself) sit on top of all of this.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by every redline subcommand.
type Config struct {
	// Author is the default track-changes author when -author is not
	// passed on the command line.
	Author string `yaml:"author"`

	// OutputSuffix is appended to the input stem when -o is not given,
	// e.g. "_redlined" yields report_redlined.docx.
	OutputSuffix string `yaml:"output_suffix"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CommentsEnabled gates whether Edit.Comment is ever attached to the
	// document.
	CommentsEnabled bool `yaml:"comments_enabled"`
}

// defaults mirror the redline CLI's documented defaults.
func defaults() *Config {
	return &Config{
		Author:          "Adeu AI",
		OutputSuffix:    "_redlined",
		LogLevel:        "info",
		CommentsEnabled: true,
	}
}

// Load builds a Config starting from defaults, overlaying yamlPath if it
// exists (a missing file is not an error — the file is optional), then
// overlaying environment variables REDLINE_AUTHOR, REDLINE_OUTPUT_SUFFIX,
// REDLINE_LOG_LEVEL, REDLINE_COMMENTS_ENABLED.
func Load(yamlPath string) (*Config, error) {
	cfg := defaults()

	if yamlPath != "" {
		if err := loadYAML(yamlPath, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Author = envString("REDLINE_AUTHOR", cfg.Author)
	cfg.OutputSuffix = envString("REDLINE_OUTPUT_SUFFIX", cfg.OutputSuffix)
	cfg.LogLevel = envString("REDLINE_LOG_LEVEL", cfg.LogLevel)
	cfg.CommentsEnabled = envBool("REDLINE_COMMENTS_ENABLED", cfg.CommentsEnabled)

	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
