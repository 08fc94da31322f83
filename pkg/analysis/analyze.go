// Package analysis computes renderer-independent views of parsed
// Verilator diagnostics: flat entries, per-file and per-code groupings,
// and aggregate totals.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/vlint/pkg/runner"
	"github.com/yaklabco/vlint/pkg/verilator"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis. seenFiles
// covers every source file a diagnostic mentions, including related
// locations; fileMap only covers files with a primary diagnostic.
type analysisContext struct {
	codeMap   map[string]*CodeAnalysis
	fileMap   map[string]*FileAnalysis
	codeFiles map[string]map[string]bool
	fileCodes map[string]map[string]bool
	seenFiles map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		codeMap:   make(map[string]*CodeAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		codeFiles: make(map[string]map[string]bool),
		fileCodes: make(map[string]map[string]bool),
		seenFiles: make(map[string]bool),
	}
}

// Analyze computes a Report from runner results.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now().UTC(),
	}
	if result == nil {
		return report
	}

	actx := newAnalysisContext()
	report.Totals.Passthrough = result.Stats.Passthrough
	report.Totals.Logs = result.Stats.LogsParsed

	for _, outcome := range result.Files {
		if outcome.Result == nil {
			continue
		}
		logPath := makeRelativePath(outcome.Path, opts.WorkingDir)

		for _, file := range outcome.Result.Diagnostics.Files() {
			for i := range outcome.Result.Diagnostics[file] {
				diag := &outcome.Result.Diagnostics[file][i]
				processDiagnostic(report, actx, opts, file, logPath, diag)
			}
		}
	}

	report.Totals.Files = len(actx.seenFiles)
	report.Totals.FilesWithIssues = len(actx.fileMap)

	if opts.IncludeByFile {
		report.ByFile = collectFiles(actx, opts)
	}
	if opts.IncludeByCode {
		report.ByCode = collectCodes(actx, opts)
	}

	return report
}

// processDiagnostic updates totals, groupings, and the flat entry list
// for one diagnostic.
func processDiagnostic(
	report *Report,
	actx *analysisContext,
	opts Options,
	file, logPath string,
	diag *verilator.Diagnostic,
) {
	severity := diag.Severity.String()

	actx.seenFiles[file] = true
	for _, rel := range diag.Related {
		if rel.Range.Start.File != "" {
			actx.seenFiles[rel.Range.Start.File] = true
		}
	}

	report.Totals.Issues++
	fa := actx.fileMap[file]
	if fa == nil {
		fa = &FileAnalysis{Path: file}
		actx.fileMap[file] = fa
		actx.fileCodes[file] = make(map[string]bool)
	}
	fa.Issues++

	switch diag.Severity {
	case verilator.SeverityError:
		report.Totals.Errors++
		fa.Errors++
	case verilator.SeverityWarning:
		report.Totals.Warnings++
		fa.Warnings++
	case verilator.SeverityInfo:
		report.Totals.Infos++
		fa.Infos++
	}

	if diag.Code != "" {
		actx.fileCodes[file][diag.Code] = true

		ca := actx.codeMap[diag.Code]
		if ca == nil {
			ca = &CodeAnalysis{Code: diag.Code}
			actx.codeMap[diag.Code] = ca
			actx.codeFiles[diag.Code] = make(map[string]bool)
		}
		ca.Issues++
		actx.codeFiles[diag.Code][file] = true
		switch diag.Severity {
		case verilator.SeverityError:
			ca.Errors++
		case verilator.SeverityWarning:
			ca.Warnings++
		case verilator.SeverityInfo:
			ca.Infos++
		}
	}

	if opts.IncludeDiagnostics {
		report.Diagnostics = append(report.Diagnostics, newEntry(file, logPath, severity, diag))
	}
}

// newEntry converts a diagnostic to its 1-based report form.
// An unbounded end column is reported as 0.
func newEntry(file, logPath, severity string, diag *verilator.Diagnostic) DiagnosticEntry {
	entry := DiagnosticEntry{
		FilePath: file,
		Code:     diag.Code,
		Severity: severity,
		Message:  diag.Message,
		Line:     diag.Range.Start.Line + 1,
		Column:   diag.Range.Start.Col + 1,
		LogPath:  logPath,
	}
	if diag.Range.End != verilator.EndOfLine {
		entry.EndColumn = diag.Range.End + 1
	}
	for _, rel := range diag.Related {
		entry.Related = append(entry.Related, RelatedEntry{
			FilePath: rel.Range.Start.File,
			Line:     rel.Range.Start.Line + 1,
			Column:   rel.Range.Start.Col + 1,
			Message:  rel.Message,
		})
	}
	return entry
}

// collectFiles flattens and sorts the per-file analysis.
func collectFiles(actx *analysisContext, opts Options) []FileAnalysis {
	out := make([]FileAnalysis, 0, len(actx.fileMap))
	for path, fa := range actx.fileMap {
		fa.Codes = sortedKeys(actx.fileCodes[path])
		out = append(out, *fa)
	}

	slices.SortStableFunc(out, func(a, b FileAnalysis) int {
		switch opts.SortBy {
		case SortByAlpha:
			return order(cmp.Compare(a.Path, b.Path), opts.SortDesc)
		case SortBySeverity:
			if c := order(cmp.Compare(a.Errors, b.Errors), opts.SortDesc); c != 0 {
				return c
			}
			return cmp.Compare(a.Path, b.Path)
		default:
			if c := order(cmp.Compare(a.Issues, b.Issues), opts.SortDesc); c != 0 {
				return c
			}
			return cmp.Compare(a.Path, b.Path)
		}
	})
	return out
}

// collectCodes flattens and sorts the per-code analysis.
func collectCodes(actx *analysisContext, opts Options) []CodeAnalysis {
	out := make([]CodeAnalysis, 0, len(actx.codeMap))
	for code, ca := range actx.codeMap {
		ca.Files = sortedKeys(actx.codeFiles[code])
		out = append(out, *ca)
	}

	slices.SortStableFunc(out, func(a, b CodeAnalysis) int {
		switch opts.SortBy {
		case SortByAlpha:
			return order(cmp.Compare(a.Code, b.Code), opts.SortDesc)
		case SortBySeverity:
			if c := order(cmp.Compare(a.Errors, b.Errors), opts.SortDesc); c != 0 {
				return c
			}
			return cmp.Compare(a.Code, b.Code)
		default:
			if c := order(cmp.Compare(a.Issues, b.Issues), opts.SortDesc); c != 0 {
				return c
			}
			return cmp.Compare(a.Code, b.Code)
		}
	})
	return out
}

// order optionally inverts a comparison result.
func order(c int, invert bool) int {
	if invert {
		return -c
	}
	return c
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
