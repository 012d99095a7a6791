// Package config provides configuration loading and management for wflint.
//
// Configuration is loaded using Viper, supporting YAML config files and environment
// variable overrides. The defaults reproduce the fixed command contract: scan
// .github/workflows/*.yml relative to the working directory, skip node_modules,
// and print one line per file.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [DiscoveryConfig] controls which files are validated
//   - [OutputConfig] controls terminal output
//
// Configuration priority (highest to lowest):
//  1. Environment variables (WFLINT_ prefix, e.g. WFLINT_OUTPUT_COLOR)
//  2. Config file specified by WFLINT_CONFIG_PATH
//  3. ./.wflint.yaml in the working directory
//  4. [DefaultConfig] defaults
package config

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// DefaultPattern is the glob matched against the working directory when no
// pattern is configured.
const DefaultPattern = ".github/workflows/*.yml"

// DefaultIgnore is the dependency directory excluded from discovery.
const DefaultIgnore = "node_modules/**"

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used throughout
// the application. Use [DefaultConfig] to get sensible defaults.
type Config struct {
	// Discovery controls which files are validated.
	Discovery DiscoveryConfig `mapstructure:"discovery"`

	// Output contains terminal output formatting configuration.
	Output OutputConfig `mapstructure:"output"`

	// Log controls diagnostic logging on stderr.
	Log LogConfig `mapstructure:"log"`
}

// DiscoveryConfig defines the glob used to find workflow files.
type DiscoveryConfig struct {
	// Pattern is a slash-separated glob relative to the working directory.
	// Default: ".github/workflows/*.yml"
	Pattern string `mapstructure:"pattern"`

	// Ignore lists patterns whose matches are dropped from the result.
	// A pattern ending in "/**" excludes a whole directory tree.
	// Default: ["node_modules/**"]
	Ignore []string `mapstructure:"ignore"`
}

// OutputConfig contains terminal output formatting configuration.
type OutputConfig struct {
	// Color enables lipgloss styling of the pass and fail markers.
	// The text of each line is the same either way.
	// Default: true
	Color bool `mapstructure:"color"`

	// Summary prints a trailing "N passed, M failed" line.
	// Default: false
	Summary bool `mapstructure:"summary"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "warn"
	Level string `mapstructure:"level"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			Pattern: DefaultPattern,
			Ignore:  []string{DefaultIgnore},
		},
		Output: OutputConfig{
			Color:   true,
			Summary: false,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate reports configuration values that would make discovery fail.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Discovery.Pattern) == "" {
		errs = append(errs, errors.New("discovery.pattern must not be empty"))
	} else if _, err := path.Match(c.Discovery.Pattern, ""); err != nil {
		errs = append(errs, fmt.Errorf("discovery.pattern %q: %w", c.Discovery.Pattern, err))
	}

	for _, p := range c.Discovery.Ignore {
		if _, err := path.Match(strings.TrimSuffix(p, "/**"), ""); err != nil {
			errs = append(errs, fmt.Errorf("discovery.ignore %q: %w", p, err))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	return errors.Join(errs...)
}
