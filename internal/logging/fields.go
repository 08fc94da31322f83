// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldSuffixes = "suffixes"
	FieldFormat   = "format"
	FieldStrict   = "strict"
	FieldJobs     = "jobs"

	// Statistics fields.
	FieldLogsDiscovered   = "logs_discovered"
	FieldLogsParsed       = "logs_parsed"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldPassthroughLines = "passthrough_lines"
	FieldSourceFiles      = "source_files"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
