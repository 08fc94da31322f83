package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/vlint/internal/configloader"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.Contains(t, result.Config.Suffixes, ".sv")
	assert.True(t, result.Config.ShowPassthrough)
}

func TestLoad_ProjectConfigDiscovery(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, ".vlint.yml", "suffixes: [\".sv\"]\nstrict: true\n")

	// Discovery walks upward from a nested directory.
	nested := filepath.Join(root, "rtl", "core")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Len(t, result.LoadedFrom, 1)
	assert.Equal(t, []string{".sv"}, result.Config.Suffixes)
	assert.True(t, result.Config.Strict)
}

func TestLoad_ExplicitPathMissingFails(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
		IgnoreEnv:    true,
	})
	require.Error(t, err)
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.yml", "suffixes: [unterminated")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: path,
		IgnoreEnv:    true,
	})
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VLINT_SUFFIXES", ".sv, .vhd")
	t.Setenv("VLINT_JOBS", "3")
	t.Setenv("VLINT_STRICT", "true")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{".sv", ".vhd"}, result.Config.Suffixes)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.True(t, result.Config.Strict)
}

func TestLoad_EnvInvalidBool(t *testing.T) {
	t.Setenv("VLINT_STRICT", "sometimes")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
}
