// Package logger provides verbose logging for the metricminer CLI.
// Output is silent until SetVerbose(true), which the --verbose flag calls;
// messages then go to stderr to show how the key file and client are resolved.
package logger

import (
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
)

// quiet is above every level the package emits.
const quiet = log.Level(math.MaxInt32)

// base is safe for concurrent use; charmbracelet/log locks internally.
var base = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "metricminer",
	Level:  quiet,
})

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	if v {
		base.SetLevel(log.DebugLevel)
		return
	}
	base.SetLevel(quiet)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return base.GetLevel() != quiet
}

// SetOutput redirects log output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// Debug logs a formatted debug message.
func Debug(format string, args ...any) {
	base.Debugf(format, args...)
}

// Section marks the start of a pipeline stage.
func Section(name string) {
	base.Infof("=== %s ===", name)
}

// Info logs a formatted informational message.
func Info(format string, args ...any) {
	base.Infof(format, args...)
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	base.Warnf(format, args...)
}
