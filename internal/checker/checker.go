// Package checker runs the environment check: probe every catalog tool in
// order, print a status line for each, then print the runtime version, the
// working directory and the next-steps guidance.
package checker

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/CodexForgeBR/devcheck/internal/catalog"
	"github.com/CodexForgeBR/devcheck/internal/probe"
	"github.com/CodexForgeBR/devcheck/internal/report"
)

// Options tunes a run. The zero value reproduces the default behavior.
type Options struct {
	// OptionalTimeout bounds optional tool checks; zero means the catalog default.
	OptionalTimeout time.Duration
	// Trace receives per-probe debug events.
	Trace zerolog.Logger
}

// Checker holds the collaborators of one run. Fields are exported so tests
// can substitute the tool list and the ambient lookups.
type Checker struct {
	Prober         *probe.Prober
	Tools          []probe.Tool
	Printer        *report.Printer
	Getwd          func() (string, error)
	RuntimeVersion func() string
}

// New returns a Checker that writes to w and probes the default catalog.
func New(w io.Writer, opts Options) *Checker {
	return &Checker{
		Prober:         probe.NewProber(opts.Trace),
		Tools:          catalog.DefaultTools(opts.OptionalTimeout),
		Printer:        report.NewPrinter(w),
		Getwd:          os.Getwd,
		RuntimeVersion: RuntimeVersion,
	}
}

// RunCheck performs one full check against the default catalog, writing the
// report to w.
func RunCheck(ctx context.Context, w io.Writer, opts Options) []probe.Result {
	return New(w, opts).Run(ctx)
}

// Run probes each tool sequentially and prints the report. Tool failures never
// stop the run. Cancelling ctx stops it before the next probe; the results
// gathered so far are returned and the trailing block is not printed.
func (c *Checker) Run(ctx context.Context) []probe.Result {
	c.Printer.Header()

	results := make([]probe.Result, 0, len(c.Tools))
	for _, tool := range c.Tools {
		if ctx.Err() != nil {
			return results
		}
		res := c.Prober.Probe(ctx, tool)
		if ctx.Err() != nil {
			// The probe was killed by the caller, not by the tool.
			return results
		}
		c.Printer.Status(res)
		results = append(results, res)
	}

	c.Printer.Runtime(c.RuntimeVersion())
	dir, err := c.Getwd()
	c.Printer.WorkingDir(dir, err)
	c.Printer.Guidance()

	return results
}

// RuntimeVersion describes the Go runtime devcheck is running on.
func RuntimeVersion() string {
	return fmt.Sprintf("%s (%s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
