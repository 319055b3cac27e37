package probe

import "time"

// Outcome classifies a finished tool check.
type Outcome int

const (
	// Success means the tool ran and exited 0.
	Success Outcome = iota
	// Failed means the tool was found but its invocation reported failure.
	Failed
	// NotInstalled means the executable is absent from the search path.
	NotInstalled
	// TimedOut means the tool did not exit before its timeout and was killed.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failed:
		return "failed"
	case NotInstalled:
		return "not_installed"
	case TimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Result is the outcome of one tool check.
type Result struct {
	Tool    Tool
	Outcome Outcome
	// Output is the captured stdout with surrounding whitespace trimmed.
	Output string
	// ExitStatus is the tool's exit code when Outcome is Failed, -1 if the
	// process never produced one.
	ExitStatus int
	Err        error
	Duration   time.Duration
}

// OK reports whether the tool ran successfully.
func (r Result) OK() bool {
	return r.Outcome == Success
}
