package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowRelated includes secondary and elaboration messages under
	// each diagnostic.
	ShowRelated bool

	// ShowPassthrough includes unstructured lines after each log's
	// diagnostics.
	ShowPassthrough bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// WorkingDir is the directory to make log paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:          os.Stdout,
		ErrorWriter:     os.Stderr,
		Format:          FormatText,
		Color:           "auto",
		ShowRelated:     true,
		ShowPassthrough: true,
		ShowSummary:     true,
	}
}
