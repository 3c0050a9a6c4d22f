// Package config holds the runtime options of an mdconcat run.
//
// There is no configuration file: defaults come from DefaultConfig and
// command-line flags override them through MergeWithFlags.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/harrison/mdconcat/internal/logger"
)

// Report formats accepted by ReportFormat.
const (
	ReportText = "text"
	ReportYAML = "yaml"
)

// Config represents mdconcat runtime options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string

	// Quiet suppresses log lines; the completion report is still printed
	Quiet bool

	// Concurrency is the number of files read in parallel (0 = number of CPUs)
	Concurrency int

	// ReportFormat selects the completion report layout (text, yaml)
	ReportFormat string
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		Quiet:        false,
		Concurrency:  0,
		ReportFormat: ReportText,
	}
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel *string, quiet *bool, concurrency *int, reportFormat *string) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	}
	if quiet != nil {
		c.Quiet = *quiet
	}
	if concurrency != nil {
		c.Concurrency = *concurrency
	}
	if reportFormat != nil {
		c.ReportFormat = strings.ToLower(strings.TrimSpace(*reportFormat))
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0, got %d", c.Concurrency)
	}

	switch c.ReportFormat {
	case ReportText, ReportYAML:
	default:
		return fmt.Errorf("invalid report format %q, must be one of: text, yaml", c.ReportFormat)
	}

	return nil
}

// Workers returns the effective number of concurrent readers.
func (c *Config) Workers() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}
