package cli

import "github.com/yaklabco/vlint/pkg/runner"

// Exit codes for vlint.
const (
	// ExitSuccess indicates successful execution with no errors.
	ExitSuccess = 0

	// ExitErrors indicates parsing completed but found error diagnostics.
	ExitErrors = 1

	// ExitWarnings indicates parsing found warnings (strict mode only).
	ExitWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.BySeverity["error"]
	warnings := result.Stats.BySeverity["warning"]

	if errors > 0 {
		return ExitErrors
	}
	if strict && warnings > 0 {
		return ExitWarnings
	}
	return ExitSuccess
}

// exitCodeError carries a non-zero exit code through Cobra's error path
// without triggering error logging.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return "diagnostics found"
}

// ExitCode extracts the exit code from an error returned by a command.
// Non-exitCodeError errors map to ExitErrors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ec, ok := err.(*exitCodeError); ok {
		return ec.code
	}
	return ExitErrors
}

// IsDiagnosticsFound reports whether err only signals a non-zero exit
// code for found diagnostics.
func IsDiagnosticsFound(err error) bool {
	_, ok := err.(*exitCodeError)
	return ok
}
