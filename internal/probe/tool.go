// Package probe runs a single tool check: invoke an external executable with a
// version-reporting argument and classify what happened.
package probe

import (
	"strings"
	"time"
)

// Tier decides how a failed check is reported.
type Tier int

const (
	// Mandatory tools are reported with a failure marker when missing.
	Mandatory Tier = iota
	// Optional tools are reported as non-blocking information when missing.
	Optional
)

func (t Tier) String() string {
	switch t {
	case Mandatory:
		return "mandatory"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

// Tool describes one executable to check.
type Tool struct {
	Name    string        // stable identifier, e.g. "node"
	Label   string        // human name used in output, e.g. "Node.js"
	Command string        // executable looked up on PATH
	Args    []string      // version-reporting arguments
	Tier    Tier
	Timeout time.Duration // zero means wait for the tool to exit
}

// CommandLine returns the invocation as a single display string.
func (t Tool) CommandLine() string {
	if len(t.Args) == 0 {
		return t.Command
	}
	return t.Command + " " + strings.Join(t.Args, " ")
}
