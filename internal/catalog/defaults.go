// Package catalog holds the fixed, ordered list of tools devcheck probes.
//
// The order is part of the output contract: the JavaScript runtime first, then
// its package manager, then version control, then the optional editor.
package catalog

import (
	"time"

	"github.com/CodexForgeBR/devcheck/internal/probe"
)

// Tool identifiers.
const (
	Node = "node"
	NPM  = "npm"
	Git  = "git"
	Code = "code"
)

// DefaultOptionalTimeout bounds the editor check when no override is given.
const DefaultOptionalTimeout = 5 * time.Second

// versionFlag is what every probed tool accepts to print its version.
const versionFlag = "--version"

// DefaultTools returns the tools to probe, in output order. optionalTimeout
// applies to optional tools; a non-positive value falls back to
// DefaultOptionalTimeout so the optional check is always bounded.
func DefaultTools(optionalTimeout time.Duration) []probe.Tool {
	if optionalTimeout <= 0 {
		optionalTimeout = DefaultOptionalTimeout
	}
	return []probe.Tool{
		{Name: Node, Label: "Node.js", Command: "node", Args: []string{versionFlag}, Tier: probe.Mandatory},
		{Name: NPM, Label: "npm", Command: "npm", Args: []string{versionFlag}, Tier: probe.Mandatory},
		{Name: Git, Label: "Git", Command: "git", Args: []string{versionFlag}, Tier: probe.Mandatory},
		{Name: Code, Label: "VS Code", Command: "code", Args: []string{versionFlag}, Tier: probe.Optional, Timeout: optionalTimeout},
	}
}
