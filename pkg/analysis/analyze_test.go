package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/vlint/pkg/runner"
	"github.com/yaklabco/vlint/pkg/verilator"
)

func diag(sev verilator.Severity, code, file string, line int) verilator.Diagnostic {
	return verilator.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  "m",
		Range: verilator.SourceRange{
			Start: verilator.SourceLocation{File: file, Line: line},
			End:   verilator.EndOfLine,
		},
	}
}

func resultWith(path string, diags ...verilator.Diagnostic) runner.FileOutcome {
	set := make(verilator.DiagnosticSet)
	for _, d := range diags {
		set.Add(d)
	}
	return runner.FileOutcome{
		Path:   path,
		Result: &verilator.Result{Diagnostics: set},
	}
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{}, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Issues)
	assert.Empty(t, report.Diagnostics)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByCode)
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			resultWith("sim.log",
				diag(verilator.SeverityError, "PINMISSING", "top.sv", 2),
				diag(verilator.SeverityError, "PINMISSING", "top.sv", 5),
				diag(verilator.SeverityWarning, "WIDTH", "alu.sv", 1),
			),
			resultWith("lint.log",
				diag(verilator.SeverityWarning, "WIDTH", "alu.sv", 9),
			),
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 4, report.Totals.Issues)
	assert.Equal(t, 2, report.Totals.Errors)
	assert.Equal(t, 2, report.Totals.Warnings)
	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithIssues)
	assert.True(t, report.Totals.HasErrors())
}

func TestAnalyze_RelatedFilesWidenSourceCount(t *testing.T) {
	t.Parallel()

	d := diag(verilator.SeverityError, "PINMISSING", "top.sv", 4)
	d.Related = []verilator.RelatedMessage{
		{Message: "Cell declared here", Range: verilator.SourceRange{
			Start: verilator.SourceLocation{File: "cells.svh", Line: 12, Col: 2},
			End:   verilator.EndOfLine,
		}},
	}

	report := Analyze(&runner.Result{
		Files: []runner.FileOutcome{resultWith("sim.log", d)},
	}, DefaultOptions())

	// cells.svh is referenced but carries no diagnostic of its own.
	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.FilesWithIssues)
}

func TestAnalyze_GroupsByCode(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			resultWith("sim.log",
				diag(verilator.SeverityWarning, "WIDTH", "a.sv", 1),
				diag(verilator.SeverityWarning, "WIDTH", "b.sv", 1),
				diag(verilator.SeverityError, "PINMISSING", "a.sv", 2),
			),
		},
	}

	report := Analyze(result, DefaultOptions())

	require.Len(t, report.ByCode, 2)
	// Default sort is by count, descending.
	assert.Equal(t, "WIDTH", report.ByCode[0].Code)
	assert.Equal(t, 2, report.ByCode[0].Issues)
	assert.Equal(t, []string{"a.sv", "b.sv"}, report.ByCode[0].Files)
}

func TestAnalyze_SortByAlpha(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			resultWith("sim.log",
				diag(verilator.SeverityError, "", "z.sv", 1),
				diag(verilator.SeverityError, "", "a.sv", 1),
				diag(verilator.SeverityError, "", "a.sv", 2),
			),
		},
	}

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha
	opts.SortDesc = false

	report := Analyze(result, opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "a.sv", report.ByFile[0].Path)
	assert.Equal(t, "z.sv", report.ByFile[1].Path)
}

func TestAnalyze_EntryPositionsAreOneBased(t *testing.T) {
	t.Parallel()

	d := diag(verilator.SeverityError, "BLKSEQ", "ctl.sv", 7)
	d.Range.Start.Col = 3
	d.Range.End = 8
	d.Related = []verilator.RelatedMessage{
		{Message: "In instance top", Range: d.Range},
	}

	report := Analyze(&runner.Result{
		Files: []runner.FileOutcome{resultWith("sim.log", d)},
	}, DefaultOptions())

	require.Len(t, report.Diagnostics, 1)
	entry := report.Diagnostics[0]
	assert.Equal(t, 8, entry.Line)
	assert.Equal(t, 4, entry.Column)
	assert.Equal(t, 9, entry.EndColumn)
	require.Len(t, entry.Related, 1)
	assert.Equal(t, 8, entry.Related[0].Line)
}

func TestAnalyze_UnboundedEndColumnOmitted(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{
		Files: []runner.FileOutcome{
			resultWith("sim.log", diag(verilator.SeverityInfo, "", "x.sv", 0)),
		},
	}, DefaultOptions())

	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, 0, report.Diagnostics[0].EndColumn)
}
