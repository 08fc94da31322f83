// Package config defines core configuration types for vlint.
// These types are pure data structures with no dependency on how the
// configuration was loaded.
package config

import "github.com/yaklabco/vlint/pkg/hdl"

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// Config is the root configuration structure for vlint.
type Config struct {
	// Suffixes is the ordered list of recognized source file
	// suffixes. Longer suffixes win over shorter ones regardless of
	// list order.
	Suffixes []string `yaml:"suffixes"`

	// Ignore contains glob patterns for log files to skip during
	// discovery.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of parallel workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// Strict treats warnings as errors for the exit code.
	Strict bool `yaml:"strict"`

	// ShowPassthrough includes unstructured passthrough lines in the
	// report.
	ShowPassthrough bool `yaml:"show_passthrough"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Suffixes:        hdl.DefaultSuffixes().Suffixes(),
		ShowPassthrough: true,
		Format:          FormatText,
	}
}

// SuffixSet builds the recognizer for the configured suffix list. An
// empty list falls back to the stock Verilog/SystemVerilog set.
func (c *Config) SuffixSet() *hdl.SuffixSet {
	if len(c.Suffixes) == 0 {
		return hdl.DefaultSuffixes()
	}
	return hdl.NewSuffixSet(c.Suffixes...)
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Suffixes != nil {
		clone.Suffixes = make([]string, len(c.Suffixes))
		copy(clone.Suffixes, c.Suffixes)
	}
	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}
	return &clone
}
