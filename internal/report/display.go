// Package report formats every line devcheck prints.
//
// Status lines use a colored leading symbol: ✓ for a working tool, ✗ for a
// missing mandatory tool and ? for a missing optional one. Everything else is
// plain text so the output reads the same with color disabled.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/devcheck/internal/probe"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	optionalMark = color.New(color.FgYellow).SprintFunc()
)

const (
	checkTitle = "=== LOCAL DEVELOPMENT ENVIRONMENT CHECK ==="
	readyTitle = "=== READY FOR AUGMENT TASKS ==="
)

// guidance is the next-steps checklist printed after every run.
var guidance = []string{
	"If Node.js + npm are ✓, we can proceed with:",
	"1. Generate Supabase schema SQL",
	"2. Generate React PWA scaffold via Augment",
	"3. Setup complete project structure",
	"",
	"NEXT STEP: Share your Supabase URL + anon key for .env setup",
}

// Printer writes report lines to an io.Writer. Write errors are ignored: the
// report is best-effort terminal output.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints the title line that opens a run.
func (p *Printer) Header() {
	fmt.Fprintln(p.w, headerColor(checkTitle))
}

// Status prints the line for one tool check.
func (p *Printer) Status(res probe.Result) {
	fmt.Fprintln(p.w, StatusLine(res))
}

// StatusLine renders the status line for res.
//
// Mandatory tools:
//
//	✓ Node.js: v20.11.1
//	✗ Node.js not found
//	✗ Node.js not installed
//
// Optional tools never echo their version:
//
//	✓ VS Code available
//	? VS Code not in PATH (optional)
//	? VS Code not found (optional)
func StatusLine(res probe.Result) string {
	label := res.Tool.Label
	if label == "" {
		label = res.Tool.Name
	}

	if res.Tool.Tier == probe.Optional {
		switch res.Outcome {
		case probe.Success:
			return fmt.Sprintf("%s %s available", successColor("✓"), label)
		case probe.Failed:
			return fmt.Sprintf("%s %s not in PATH (optional)", optionalMark("?"), label)
		default:
			return fmt.Sprintf("%s %s not found (optional)", optionalMark("?"), label)
		}
	}

	switch res.Outcome {
	case probe.Success:
		return fmt.Sprintf("%s %s: %s", successColor("✓"), label, res.Output)
	case probe.NotInstalled:
		return fmt.Sprintf("%s %s not installed", errorColor("✗"), label)
	default:
		return fmt.Sprintf("%s %s not found", errorColor("✗"), label)
	}
}

// Runtime prints the host runtime version, preceded by a blank line.
func (p *Printer) Runtime(version string) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s Go: %s\n", successColor("✓"), version)
}

// WorkingDir prints the current directory, or why it could not be resolved.
func (p *Printer) WorkingDir(dir string, err error) {
	if err != nil {
		fmt.Fprintf(p.w, "%s Current directory: unavailable (%v)\n", errorColor("✗"), err)
		return
	}
	fmt.Fprintf(p.w, "%s Current directory: %s\n", successColor("✓"), dir)
}

// Guidance prints the fixed next-steps block, preceded by a blank line.
func (p *Printer) Guidance() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, headerColor(readyTitle))
	for _, line := range guidance {
		fmt.Fprintln(p.w, line)
	}
}
