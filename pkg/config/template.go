package config

// Template returns the commented configuration file template written
// by `vlint init`.
func Template() []byte {
	return []byte(`# vlint configuration
# See: https://github.com/yaklabco/vlint

# Recognized source file suffixes, matched longest-first inside
# Verilator's output. Any suffix list works without changing the
# grammar.
suffixes:
  - .svh
  - .sv
  - .SV
  - .vh
  - .vl
  - .v

# Glob patterns for log files to skip during discovery.
# ignore:
#   - "obj_dir/**"

# Number of parallel workers (0 = auto)
# jobs: 0

# Treat warnings as errors for the exit code
# strict: false

# Include unstructured passthrough lines in reports
show_passthrough: true
`)
}
