package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/vlint/pkg/verilator"
)

// FormatDiagnostic formats a single diagnostic for terminal output,
// optionally with its related messages indented below it.
func (s *Styles) FormatDiagnostic(d *verilator.Diagnostic, showRelated bool) string {
	var builder strings.Builder

	location := s.FormatRange(d.Range)
	severity := s.FormatSeverity(d.Severity)

	code := ""
	if d.Code != "" {
		code = "  " + s.Code.Render("("+d.Code+")")
	}

	// Main line: location  severity  message  (code)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s%s\n",
		location,
		severity,
		s.Message.Render(d.Message),
		code,
	))

	if showRelated {
		for _, rel := range d.Related {
			builder.WriteString(fmt.Sprintf("      %s %s\n",
				s.Location.Render(s.FormatRange(rel.Range)),
				s.Related.Render(rel.Message),
			))
		}
	}

	return builder.String()
}

// FormatRange renders a range as path:line:col[-end] with 1-based
// positions. An unbounded end column is omitted.
func (s *Styles) FormatRange(r verilator.SourceRange) string {
	base := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(r.Start.File),
		r.Start.Line+1,
		r.Start.Col+1,
	)
	if r.End == verilator.EndOfLine {
		return base
	}
	return fmt.Sprintf("%s-%d", base, r.End+1)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev verilator.Severity) string {
	switch sev {
	case verilator.SeverityError:
		return s.Error.Render("error")
	case verilator.SeverityWarning:
		return s.Warning.Render("warning")
	case verilator.SeverityInfo:
		return s.Info.Render("info")
	default:
		return sev.String()
	}
}

// FormatPassthrough formats one unstructured passthrough line.
func (s *Styles) FormatPassthrough(line verilator.PassthroughLine) string {
	return fmt.Sprintf("  %s  %s\n",
		s.FormatSeverity(line.Severity),
		s.Passthrough.Render(line.Text),
	)
}

// FormatFileHeader formats a source file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
