package analysis

import "time"

// Report contains pre-computed views of parsed diagnostics.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Diagnostics is the flat list for detailed output.
	Diagnostics []DiagnosticEntry `json:"diagnostics,omitempty"`

	// ByFile groups diagnostics by source file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByCode groups diagnostics by Verilator code.
	ByCode []CodeAnalysis `json:"byCode,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// DiagnosticEntry represents a single diagnostic in the report.
// Positions are 1-based; EndColumn 0 means the range extends to the
// end of its line.
type DiagnosticEntry struct {
	FilePath  string         `json:"filePath"`
	Code      string         `json:"code,omitempty"`
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	Line      int            `json:"line"`
	Column    int            `json:"column"`
	EndColumn int            `json:"endColumn,omitempty"`
	Related   []RelatedEntry `json:"related,omitempty"`
	LogPath   string         `json:"logPath,omitempty"`
}

// RelatedEntry represents a secondary or elaboration message attached
// to a diagnostic.
type RelatedEntry struct {
	FilePath string `json:"filePath"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
}

// Totals contains aggregate statistics for the report. Files counts
// every source file diagnostics mention, related locations included;
// FilesWithIssues counts only files with a primary diagnostic.
type Totals struct {
	Logs            int `json:"logsParsed"`
	Files           int `json:"sourceFiles"`
	FilesWithIssues int `json:"filesWithIssues"`
	Issues          int `json:"totalIssues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Infos           int `json:"infos"`
	Passthrough     int `json:"passthroughLines"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors returns true if there are any errors.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single source file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Codes    []string `json:"codes,omitempty"`
}

// CodeAnalysis contains aggregated data for a single Verilator code.
type CodeAnalysis struct {
	Code     string   `json:"code"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Files    []string `json:"files,omitempty"`
}
