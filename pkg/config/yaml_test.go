package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/vlint/pkg/config"
)

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Suffixes = []string{".sv", ".v"}
	cfg.Ignore = []string{"obj_dir/**"}
	cfg.Jobs = 4
	cfg.Strict = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.Suffixes, parsed.Suffixes)
	assert.Equal(t, cfg.Ignore, parsed.Ignore)
	assert.Equal(t, cfg.Jobs, parsed.Jobs)
	assert.Equal(t, cfg.Strict, parsed.Strict)
	assert.Equal(t, cfg.ShowPassthrough, parsed.ShowPassthrough)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("suffixes: [unterminated"))
	require.Error(t, err)
}

func TestTemplate_Parses(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.Template())
	require.NoError(t, err)

	assert.Contains(t, cfg.Suffixes, ".svh")
	assert.True(t, cfg.ShowPassthrough)
}

func TestSuffixSet_EmptyFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	set := cfg.SuffixSet()
	assert.True(t, set.Match("top.sv"))
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	clone := cfg.Clone()
	clone.Suffixes[0] = ".changed"

	assert.NotEqual(t, cfg.Suffixes[0], clone.Suffixes[0])
}
