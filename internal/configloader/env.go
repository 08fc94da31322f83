package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/vlint/pkg/config"
)

// envVarPrefix is the prefix for all vlint environment variables.
const envVarPrefix = "VLINT_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with VLINT_ (e.g.
// VLINT_SUFFIXES=".sv,.v"). Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "SUFFIXES"); v != "" {
		cfg.Suffixes = splitList(v)
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = splitList(v)
	}
	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = jobs
	}
	if v := os.Getenv(envVarPrefix + "STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sSTRICT: %q (expected true/false/1/0)", envVarPrefix, v)
		}
		cfg.Strict = strict
	}
	if v := os.Getenv(envVarPrefix + "SHOW_PASSTHROUGH"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sSHOW_PASSTHROUGH: %q (expected true/false/1/0)", envVarPrefix, v)
		}
		cfg.ShowPassthrough = show
	}

	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
