// Package verilator parses Verilator's diagnostic output stream into
// structured, file-addressable diagnostics.
//
// One captured text block is one pass: the parser classifies every
// line, collects continuation blocks for header lines that carry a
// source location, and returns a fresh Result. Malformed input never
// fails a pass; unrecognized text degrades to passthrough lines.
package verilator

import "sort"

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// EndOfLine marks a range whose end column could not be sized by a
// highlight line; the range extends to the end of its line.
const EndOfLine = -1

// SourceLocation is a 0-based position in a source file.
type SourceLocation struct {
	File string
	Line int
	Col  int
}

// SourceRange is a single-line range. End is the 0-based exclusive
// end column, or EndOfLine when no highlight sized it.
type SourceRange struct {
	Start SourceLocation
	End   int
}

// RelatedMessage is a secondary or elaboration message attached to a
// diagnostic. It always carries a complete range: either its own
// location from the text or the owning diagnostic's range in full.
type RelatedMessage struct {
	Range   SourceRange
	Message string
}

// Diagnostic is one structured record extracted from a header line
// and its continuation block.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g. "WIDTH"; empty when the header had none
	Message  string
	Range    SourceRange
	Related  []RelatedMessage
}

// DiagnosticSet maps a source file path to its diagnostics in
// discovery order.
type DiagnosticSet map[string][]Diagnostic

// Add appends d under its file path.
func (ds DiagnosticSet) Add(d Diagnostic) {
	ds[d.Range.Start.File] = append(ds[d.Range.Start.File], d)
}

// Files returns the file paths in the set, sorted for deterministic
// iteration.
func (ds DiagnosticSet) Files() []string {
	files := make([]string, 0, len(ds))
	for path := range ds {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// Total returns the number of diagnostics across all files.
func (ds DiagnosticSet) Total() int {
	var n int
	for _, diags := range ds {
		n += len(diags)
	}
	return n
}

// CountBySeverity returns diagnostic counts keyed by severity name.
func (ds DiagnosticSet) CountBySeverity() map[string]int {
	counts := make(map[string]int)
	for _, diags := range ds {
		for _, d := range diags {
			counts[d.Severity.String()]++
		}
	}
	return counts
}

// PassthroughLine is a line that never gained a structured
// diagnostic, tagged for display. Severity is always Error or
// Warning.
type PassthroughLine struct {
	Severity Severity
	Text     string
}

// Result is the complete output of one parser pass. It fully
// supersedes the result of any earlier pass; there is no incremental
// merge.
type Result struct {
	Diagnostics DiagnosticSet
	Passthrough []PassthroughLine
}
