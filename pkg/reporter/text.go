package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/vlint/internal/ui/pretty"
	"github.com/yaklabco/vlint/pkg/runner"
)

// TextReporter formats results as styled terminal output grouped by
// source file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No logs to parse."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportLog(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportLog writes one log's diagnostics grouped by source file,
// followed by its passthrough lines.
func (r *TextReporter) reportLog(file runner.FileOutcome) int {
	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(file.Path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}
	if file.Result == nil {
		return 0
	}

	var total int
	for _, source := range file.Result.Diagnostics.Files() {
		diags := file.Result.Diagnostics[source]
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(source, len(diags)))
		for i := range diags {
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diags[i], r.opts.ShowRelated))
			total++
		}
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowPassthrough && len(file.Result.Passthrough) > 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("passthrough:"))
		for _, line := range file.Result.Passthrough {
			fmt.Fprint(r.bw, r.styles.FormatPassthrough(line))
		}
		fmt.Fprintln(r.bw)
	}

	return total
}
