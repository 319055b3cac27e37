// Package config defines the devcheck configuration model and default values.
//
// Configuration is assembled with a strict precedence chain: built-in
// defaults < explicit config file (--config) < CLI flag overrides. devcheck
// never reads a config file the user did not name.
package config

import (
	"time"

	"github.com/CodexForgeBR/devcheck/internal/catalog"
)

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [3]string{
	"OPTIONAL_TIMEOUT",
	"VERBOSE",
	"NO_COLOR",
}

// Config holds every configuration field for the devcheck CLI.
type Config struct {
	// OptionalTimeout bounds the optional tool checks.
	OptionalTimeout time.Duration

	// Output flags.
	Verbose bool
	NoColor bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		OptionalTimeout: catalog.DefaultOptionalTimeout,
	}
}
