package runner

import "github.com/yaklabco/vlint/pkg/config"

// Options configures a run.
type Options struct {
	// Paths are files or directories to read Verilator output from.
	// Directories are walked for files matching Extensions.
	Paths []string

	// WorkingDir anchors relative paths. Defaults to the process
	// working directory.
	WorkingDir string

	// Extensions are the log file extensions discovered inside
	// directories.
	Extensions []string

	// ExcludeGlobs are glob patterns (matched against the base name)
	// for files to skip.
	ExcludeGlobs []string

	// Jobs is the number of parallel workers (<= 0 means NumCPU).
	Jobs int
}

// DefaultExtensions returns the log file extensions discovered by
// default.
func DefaultExtensions() []string {
	return []string{".log", ".out", ".txt"}
}

// OptionsFromConfig builds runner options from a resolved config.
func OptionsFromConfig(cfg *config.Config, paths []string, workDir string) Options {
	return Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}
}
