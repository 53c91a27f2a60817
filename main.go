package main

import (
	"os"

	"pipecheck/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution,
// and exits with whatever code Execute reports.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI command.
//
// pipecheck is a minimal command-line program used to validate a build/test pipeline:
//   - Parses a handful of flags (--config, --output, --verbose, --platform)
//   - Resolves a Configuration from a JSON (or YAML) file when --config is given,
//     falling back to built-in defaults with a warning when the file cannot be read
//   - Renders a status report to standard output in text or JSON form
//   - Runs three inline self-checks (serialization round-trip, deliberate
//     missing-file read, home-directory environment lookup), emitting progress
//     to standard error when verbosity is enabled
//
// Error handling strategy:
//   - An unreadable config file is recoverable: warn and continue with defaults
//   - A config file that reads fine but fails to parse or validate is fatal,
//     as is a failed serialization self-check; both exit non-zero
//   - An unrecognized --output format exits with code 1 and produces no report
func main() {
	os.Exit(cmd.Execute())
}
