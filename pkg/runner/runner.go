// Package runner discovers Verilator log files and parses them
// concurrently with a worker pool.
package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/vlint/pkg/verilator"
)

// Runner orchestrates multi-log parsing with a shared parser.
type Runner struct {
	// Parser handles per-log parsing. Parse is safe for concurrent use.
	Parser *verilator.Parser
}

// New creates a new Runner with the given parser.
func New(parser *verilator.Parser) *Runner {
	return &Runner{Parser: parser}
}

// Run discovers log files under opts.Paths and parses them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats. The runner respects context cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := newResult(len(files))
	result.Stats.LogsDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index outcomes by path and
	// rebuild in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// ParseText parses already-read Verilator output, e.g. from stdin.
func (r *Runner) ParseText(name, text string) *Result {
	result := newResult(1)
	result.Stats.LogsDiscovered = 1
	result.accumulate(FileOutcome{Path: name, Result: r.Parser.Parse(text)})
	return result
}

// worker parses files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		data, err := os.ReadFile(path)
		if err != nil {
			outcome.Error = fmt.Errorf("read %s: %w", path, err)
		} else {
			outcome.Result = r.Parser.Parse(string(data))
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
