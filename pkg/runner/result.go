package runner

import "github.com/yaklabco/vlint/pkg/verilator"

// FileOutcome wraps the parse result for a single log file.
type FileOutcome struct {
	// Path is the log file that was parsed.
	Path string

	// Result contains the parsed diagnostics for this log.
	// May be nil if the file could not be read.
	Result *verilator.Result

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// LogsDiscovered is the total number of log files found during discovery.
	LogsDiscovered int

	// LogsParsed is the number of log files successfully parsed.
	LogsParsed int

	// LogsErrored is the number of log files that could not be read.
	LogsErrored int

	// Diagnostics is the total number of diagnostics across all logs.
	Diagnostics int

	// BySeverity maps severity names to diagnostic counts.
	BySeverity map[string]int

	// Passthrough is the number of unstructured lines preserved.
	Passthrough int

	// SourceFiles is the number of distinct source files with diagnostics.
	SourceFiles int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each parsed log.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	sources map[string]struct{}
}

// HasFailures reports whether any error-severity diagnostics occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.BySeverity[verilator.SeverityError.String()] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.Diagnostics > 0
}

// newResult creates a Result with initialized maps.
func newResult(capacity int) *Result {
	return &Result{
		Files:   make([]FileOutcome, 0, capacity),
		Stats:   Stats{BySeverity: make(map[string]int)},
		sources: make(map[string]struct{}),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.LogsErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.LogsParsed++
	r.Stats.Passthrough += len(outcome.Result.Passthrough)

	for _, file := range outcome.Result.Diagnostics.Files() {
		r.sources[file] = struct{}{}
		for _, diag := range outcome.Result.Diagnostics[file] {
			r.Stats.Diagnostics++
			r.Stats.BySeverity[diag.Severity.String()]++
		}
	}
	r.Stats.SourceFiles = len(r.sources)
}
