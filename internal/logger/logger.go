package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// All diagnostics go to standard error so the report on standard output stays
// machine-readable. The writer is swappable so tests can capture output.
var out io.Writer = os.Stderr

// level is the verbosity for the current run, set once via Init.
// 0 silences Progress and Debug, 1 enables Progress, 2 and above enables Debug.
var level int

var (
	progressColor = color.New(color.FgGreen)
	warnColor     = color.New(color.FgHiMagenta)
	errorColor    = color.New(color.FgRed)
	debugColor    = color.New(color.FgCyan)
)

// Init sets the verbosity level for this run.
// Parameters:
// - verbosity: occurrence count of the --verbose flag.
// Progress messages print at level 1 and above, Debug messages at level 2 and
// above. Warn and Error always print regardless of level.
func Init(verbosity int) {
	level = verbosity
}

// SetOutput redirects all log output to w. Used by tests; production code
// leaves the default of standard error in place.
func SetOutput(w io.Writer) {
	out = w
}

// Progress logs basic progress messages in green when verbosity is at least 1.
func Progress(format string, a ...any) {
	if level >= 1 {
		progressColor.Fprintf(out, format, a...)
	}
}

// Debug logs detailed diagnostic messages in cyan when verbosity is at least 2.
func Debug(format string, a ...any) {
	if level >= 2 {
		debugColor.Fprintf(out, format, a...)
	}
}

// Warn logs warning messages in bright magenta.
// Magenta is bright and stands out, signaling caution without being too alarming.
func Warn(format string, a ...any) {
	warnColor.Fprintf(out, format, a...)
}

// Error logs error messages in red to draw immediate attention.
func Error(format string, a ...any) {
	errorColor.Fprintf(out, format, a...)
}
