package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/vlint/pkg/runner"
)

// FormatSummary renders a multi-line run summary.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString(s.SummaryTitle.Render("Summary") + "\n")
	builder.WriteString(s.summaryRow("Logs parsed", fmt.Sprintf("%d/%d", stats.LogsParsed, stats.LogsDiscovered)))
	builder.WriteString(s.summaryRow("Source files", fmt.Sprintf("%d", stats.SourceFiles)))
	builder.WriteString(s.summaryRow("Diagnostics", fmt.Sprintf("%d", stats.Diagnostics)))

	for _, sev := range []string{"error", "warning", "info"} {
		if n := stats.BySeverity[sev]; n > 0 {
			builder.WriteString(s.summaryRow("  "+sev, fmt.Sprintf("%d", n)))
		}
	}

	if stats.Passthrough > 0 {
		builder.WriteString(s.summaryRow("Passthrough lines", fmt.Sprintf("%d", stats.Passthrough)))
	}
	if stats.LogsErrored > 0 {
		builder.WriteString(s.summaryRow("Unreadable logs", s.Failure.Render(fmt.Sprintf("%d", stats.LogsErrored))))
	}

	return builder.String()
}

// FormatSummaryOneLine renders a single-line run summary.
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.Diagnostics == 0 {
		return s.Success.Render(fmt.Sprintf("clean: %d logs parsed, no diagnostics", stats.LogsParsed))
	}

	parts := make([]string, 0, 3)
	for _, sev := range []string{"error", "warning", "info"} {
		if n := stats.BySeverity[sev]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, plural(sev, n)))
		}
	}

	line := fmt.Sprintf("%s in %d files (%d logs)",
		strings.Join(parts, ", "), stats.SourceFiles, stats.LogsParsed)
	if stats.BySeverity["error"] > 0 {
		return s.Failure.Render(line)
	}
	return s.Warning.Render(line)
}

func (s *Styles) summaryRow(label, value string) string {
	return fmt.Sprintf("  %-18s %s\n", label+":", s.SummaryValue.Render(value))
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
