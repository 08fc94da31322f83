package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/vlint/pkg/runner"
	"github.com/yaklabco/vlint/pkg/verilator"
)

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newRunner() *runner.Runner {
	return runner.New(verilator.New(nil))
}

func TestRun_SingleLog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLog(t, dir, "sim.log", "%Error: top.sv:3:7: Syntax error\n")

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths: []string{dir},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.LogsDiscovered)
	assert.Equal(t, 1, result.Stats.LogsParsed)
	assert.Equal(t, 1, result.Stats.Diagnostics)
	assert.Equal(t, 1, result.Stats.SourceFiles)
	assert.True(t, result.HasFailures())
}

func TestRun_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLog(t, dir, "b.log", "%Warning-WIDTH: b.sv:1:1: Width mismatch\n")
	writeLog(t, dir, "a.log", "%Error: a.sv:1:1: Syntax error\n")
	writeLog(t, dir, "c.log", "plain output\n")

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths: []string{dir},
		Jobs:  4,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, "a.log", filepath.Base(result.Files[0].Path))
	assert.Equal(t, "b.log", filepath.Base(result.Files[1].Path))
	assert.Equal(t, "c.log", filepath.Base(result.Files[2].Path))
}

func TestRun_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLog(t, dir, "keep.log", "%Error: x.sv:1:1: bad\n")
	sub := filepath.Join(dir, "obj_dir")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeLog(t, sub, "skip.log", "%Error: y.sv:1:1: bad\n")

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:        []string{dir},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"obj_dir/**"},
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, "keep.log", filepath.Base(result.Files[0].Path))
}

func TestRun_ExplicitFileIgnoresExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeLog(t, dir, "verilator.output", "%Warning-UNUSED: z.sv:2:3: Signal unused\n")

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths: []string{path},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Diagnostics)
	assert.False(t, result.HasFailures())
	assert.True(t, result.HasIssues())
}

func TestRun_MissingPathFails(t *testing.T) {
	t.Parallel()

	_, err := newRunner().Run(context.Background(), runner.Options{
		Paths: []string{filepath.Join(t.TempDir(), "nope.log")},
	})
	require.Error(t, err)
}

func TestRun_Cancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.log", "b.log", "c.log"} {
		writeLog(t, dir, name, "%Error: f.sv:1:1: bad\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{Paths: []string{dir}})
	require.Error(t, err)
}

func TestParseText(t *testing.T) {
	t.Parallel()

	result := newRunner().ParseText("<stdin>", "%Error-PINMISSING: top.sv:4:2: Pin not connected\n")

	require.Len(t, result.Files, 1)
	assert.Equal(t, "<stdin>", result.Files[0].Path)
	assert.Equal(t, 1, result.Stats.Diagnostics)
	assert.Equal(t, 1, result.Stats.BySeverity["error"])
}

func TestDiscover_SortsAndDeduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeLog(t, dir, "sim.log", "x\n")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths: []string{dir, path},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}
