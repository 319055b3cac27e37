// Package logging provides colored, leveled diagnostics for the devcheck CLI.
//
// Every function writes to stderr: stdout is reserved for the report. Debug
// output and the probe trace are suppressed unless verbose mode is enabled.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// verbose controls whether Debug() produces output.
var verbose bool

// output is where all diagnostics go. Tests swap it.
var output io.Writer = os.Stderr

// Color printers for each log level.
var (
	warnPrefix  = color.New(color.FgYellow).SprintFunc()
	errorPrefix = color.New(color.FgRed).SprintFunc()
	debugPrefix = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	fmt.Fprintln(output, warnPrefix("[WARN]")+" "+msg)
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(output, errorPrefix("[ERROR]")+" "+msg)
}

// Debug prints a debug message in blue, only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(output, debugPrefix("[DEBUG]")+" "+msg)
}

// NewTrace returns the structured logger used for per-probe tracing. When
// verbose is false it discards everything.
func NewTrace(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	w := zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    color.NoColor,
	}
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Str("app", "devcheck").Logger()
}
