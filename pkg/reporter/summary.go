package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/vlint/internal/ui/pretty"
	"github.com/yaklabco/vlint/pkg/analysis"
	"github.com/yaklabco/vlint/pkg/runner"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 80

// SummaryReporter emits aggregate statistics with per-code and
// per-file breakdowns instead of individual diagnostics.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	report := analysis.Analyze(result, analysis.Options{
		IncludeByFile: true,
		IncludeByCode: true,
		SortBy:        analysis.SortByCount,
		SortDesc:      true,
		WorkingDir:    r.opts.WorkingDir,
	})

	divider := strings.Repeat("-", min(getTerminalWidth(r.opts.Writer), defaultTermWidth))

	var stats runner.Stats
	if result != nil {
		stats = result.Stats
	}
	fmt.Fprint(r.bw, r.styles.FormatSummary(stats))

	if len(report.ByCode) > 0 {
		fmt.Fprintln(r.bw, divider)
		fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render("By code"))
		for _, ca := range report.ByCode {
			fmt.Fprintf(r.bw, "  %-16s %4d  %s\n",
				ca.Code, ca.Issues, r.styles.Dim.Render(strings.Join(ca.Files, ", ")))
		}
	}

	if len(report.ByFile) > 0 {
		fmt.Fprintln(r.bw, divider)
		fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render("By file"))
		for _, fa := range report.ByFile {
			fmt.Fprintf(r.bw, "  %-40s %4d\n", fa.Path, fa.Issues)
		}
	}

	return report.Totals.Issues, nil
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
