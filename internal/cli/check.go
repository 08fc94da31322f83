package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/vlint/internal/configloader"
	"github.com/yaklabco/vlint/internal/logging"
	"github.com/yaklabco/vlint/pkg/config"
	"github.com/yaklabco/vlint/pkg/reporter"
	"github.com/yaklabco/vlint/pkg/runner"
	"github.com/yaklabco/vlint/pkg/verilator"
)

type checkFlags struct {
	format        string
	suffixes      []string
	ignore        []string
	jobs          int
	strict        bool
	stdin         bool
	noPassthrough bool
	noRelated     bool
	compact       bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse Verilator logs and report diagnostics",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Parse Verilator output and report structured diagnostics.

By default, parses all .log, .out, and .txt files in the current directory
and subdirectories. Specify paths to parse specific files or directories.
When stdin is a pipe and no paths are given, input is read from stdin.

Examples:
  verilator --lint-only top.sv 2>&1 | vlint check
  vlint check build/sim.log          # Parse a single log
  vlint check logs/                  # Parse a directory of logs
  vlint check --format json          # Output as JSON for CI
  vlint check --strict               # Treat warnings as errors`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	// CLI flags override file and environment settings, but only when
	// explicitly provided.
	if cmd.Flags().Changed("suffix") {
		cfg.Suffixes = flags.suffixes
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}
	if flags.noPassthrough {
		cfg.ShowPassthrough = false
	}

	logger.Debug("configuration loaded",
		logging.FieldSuffixes, cfg.Suffixes,
		logging.FieldStrict, cfg.Strict,
		logging.FieldJobs, cfg.Jobs,
	)

	parseRunner := runner.New(verilator.New(cfg.SuffixSet()))

	result, err := runDiscoveredOrStdin(ctx, cmd, parseRunner, args, flags, cfg, workDir)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          cmd.OutOrStdout(),
		ErrorWriter:     cmd.ErrOrStderr(),
		Format:          format,
		Color:           colorMode,
		ShowRelated:     !flags.noRelated,
		ShowPassthrough: cfg.ShowPassthrough,
		ShowSummary:     true,
		Compact:         flags.compact,
		WorkingDir:      workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, cfg.Strict); code != ExitSuccess {
		return &exitCodeError{code: code}
	}

	return nil
}

// runDiscoveredOrStdin parses stdin when requested or piped with no
// paths, and discovers log files otherwise.
func runDiscoveredOrStdin(
	ctx context.Context,
	cmd *cobra.Command,
	parseRunner *runner.Runner,
	args []string,
	flags *checkFlags,
	cfg *config.Config,
	workDir string,
) (*runner.Result, error) {
	if flags.stdin || (len(args) == 0 && stdinIsPiped(cmd.InOrStdin())) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return parseRunner.ParseText("<stdin>", string(data)), nil
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	result, err := parseRunner.Run(ctx, runner.OptionsFromConfig(cfg, paths, workDir))
	if err != nil {
		return nil, errors.Join(errors.New("parse run failed"), err)
	}
	return result, nil
}

// stdinIsPiped reports whether the command's input is a real pipe
// rather than an interactive terminal.
func stdinIsPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		// Replaced input (tests) counts as piped.
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().StringSliceVar(&flags.suffixes, "suffix", nil, "recognized source file suffixes")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "read Verilator output from stdin")
	cmd.Flags().BoolVar(&flags.noPassthrough, "no-passthrough", false, "hide unstructured passthrough lines")
	cmd.Flags().BoolVar(&flags.noRelated, "no-related", false, "hide secondary and elaboration messages")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
