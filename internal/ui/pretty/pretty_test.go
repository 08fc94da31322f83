package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/vlint/internal/ui/pretty"
	"github.com/yaklabco/vlint/pkg/runner"
	"github.com/yaklabco/vlint/pkg/verilator"
)

func plainStyles() *pretty.Styles {
	return pretty.NewStyles(false)
}

func TestFormatRange(t *testing.T) {
	t.Parallel()

	s := plainStyles()

	bounded := verilator.SourceRange{
		Start: verilator.SourceLocation{File: "top.sv", Line: 9, Col: 2},
		End:   7,
	}
	assert.Equal(t, "top.sv:10:3-8", s.FormatRange(bounded))

	unbounded := bounded
	unbounded.End = verilator.EndOfLine
	assert.Equal(t, "top.sv:10:3", s.FormatRange(unbounded))
}

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	s := plainStyles()
	d := &verilator.Diagnostic{
		Severity: verilator.SeverityWarning,
		Code:     "WIDTH",
		Message:  "Operator ASSIGNW expects 8 bits",
		Range: verilator.SourceRange{
			Start: verilator.SourceLocation{File: "alu.sv", Line: 4, Col: 0},
			End:   verilator.EndOfLine,
		},
		Related: []verilator.RelatedMessage{
			{Message: "In instance top.alu0", Range: verilator.SourceRange{
				Start: verilator.SourceLocation{File: "alu.sv", Line: 4, Col: 0},
				End:   verilator.EndOfLine,
			}},
		},
	}

	out := s.FormatDiagnostic(d, true)
	assert.Contains(t, out, "alu.sv:5:1")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "(WIDTH)")
	assert.Contains(t, out, "In instance top.alu0")

	noRelated := s.FormatDiagnostic(d, false)
	assert.NotContains(t, noRelated, "In instance")
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	s := plainStyles()

	clean := s.FormatSummaryOneLine(runner.Stats{LogsParsed: 2, BySeverity: map[string]int{}})
	assert.Contains(t, clean, "clean")

	dirty := s.FormatSummaryOneLine(runner.Stats{
		LogsParsed:  1,
		SourceFiles: 2,
		Diagnostics: 3,
		BySeverity:  map[string]int{"error": 1, "warning": 2},
	})
	assert.Contains(t, dirty, "1 error")
	assert.Contains(t, dirty, "2 warnings")
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	s := plainStyles()
	out := s.FormatSummary(runner.Stats{
		LogsDiscovered: 3,
		LogsParsed:     2,
		LogsErrored:    1,
		SourceFiles:    2,
		Diagnostics:    4,
		Passthrough:    5,
		BySeverity:     map[string]int{"error": 4},
	})

	assert.Contains(t, out, "Logs parsed")
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "Unreadable logs")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.NotEmpty(t, line)
	}
}

func TestIsColorEnabled(t *testing.T) {
	buf := &bytes.Buffer{}

	assert.True(t, pretty.IsColorEnabled("always", buf))
	assert.False(t, pretty.IsColorEnabled("never", buf))
	// Non-file writers never report a TTY in auto mode.
	assert.False(t, pretty.IsColorEnabled("auto", buf))
}
