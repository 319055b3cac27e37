package probe

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultWaitDelay is how long Probe waits for a killed tool's output pipes
// to close before giving up on them.
const DefaultWaitDelay = time.Second

// Prober runs tool checks one at a time.
type Prober struct {
	// Trace receives one debug event per check. The zero value discards.
	Trace zerolog.Logger
	// WaitDelay overrides DefaultWaitDelay when positive.
	WaitDelay time.Duration
}

// NewProber returns a Prober that traces to the given logger.
func NewProber(trace zerolog.Logger) *Prober {
	return &Prober{Trace: trace}
}

// Probe invokes tool and classifies the outcome. It never returns an error:
// every failure mode is folded into the Result.
func (p *Prober) Probe(ctx context.Context, tool Tool) Result {
	start := time.Now()

	runCtx := ctx
	if tool.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, tool.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, tool.Command, tool.Args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.WaitDelay = p.waitDelay()

	err := cmd.Run()

	res := classify(runCtx, err)
	res.Tool = tool
	res.Output = strings.TrimSpace(stdout.String())
	res.Duration = time.Since(start)

	p.trace(res)
	return res
}

func (p *Prober) waitDelay() time.Duration {
	if p.WaitDelay > 0 {
		return p.WaitDelay
	}
	return DefaultWaitDelay
}

func (p *Prober) trace(res Result) {
	ev := p.Trace.Debug().
		Str("tool", res.Tool.Name).
		Str("command", res.Tool.CommandLine()).
		Stringer("tier", res.Tool.Tier).
		Stringer("outcome", res.Outcome).
		Dur("duration", res.Duration)
	if res.Outcome == Failed {
		ev = ev.Int("exit_status", res.ExitStatus)
	}
	if res.Err != nil {
		ev = ev.Err(res.Err)
	}
	ev.Msg("probe finished")
}

// classify maps the error from cmd.Run onto an Outcome. Lookup failures win
// over the context state so a missing tool is never reported as a timeout.
func classify(ctx context.Context, err error) Result {
	if err == nil {
		return Result{Outcome: Success}
	}
	if IsNotInstalled(err) {
		return Result{Outcome: NotInstalled, ExitStatus: -1, Err: err}
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{Outcome: TimedOut, ExitStatus: -1, Err: err}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Outcome: Failed, ExitStatus: exitErr.ExitCode(), Err: err}
	}
	return Result{Outcome: Failed, ExitStatus: -1, Err: err}
}

// IsNotInstalled reports whether err means the executable could not be found.
// exec.ErrDot counts: a tool that only resolves relative to the working
// directory is not on the search path.
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, exec.ErrDot) ||
		errors.Is(err, fs.ErrNotExist)
}
