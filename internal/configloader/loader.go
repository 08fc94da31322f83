// Package configloader provides configuration loading and resolution:
// project config discovery, explicit paths, and environment variable
// overrides.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/vlint/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and a missing file
	// is an error.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. Environment variables (VLINT_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.vlint.yml upward search)
//  4. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.NewConfig()}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	path := opts.ExplicitPath
	if path == "" {
		found, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path != "" {
		if err := loadFile(result, path, opts.ExplicitPath != ""); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// loadFile merges one YAML file over the current config. A missing
// discovered file only warns; a missing explicit file fails.
func loadFile(result *LoadResult, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("skipping unreadable config %s: %v", path, err))
		return nil
	}

	loaded, err := config.FromYAML(data)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	// FromYAML seeds defaults, so the loaded file replaces the
	// current config wholesale. CLI-only fields are merged later by
	// the command layer.
	*result.Config = *loaded
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}
