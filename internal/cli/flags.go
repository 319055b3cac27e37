// Package cli provides flag binding and validation for the devcheck CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/devcheck/internal/config"
)

// BindFlags registers the devcheck flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to a config file (KEY=VALUE, or TOML when named *.toml)")
	flags.DurationVar(&cfg.OptionalTimeout, "optional-timeout", cfg.OptionalTimeout, "Timeout for optional tool checks")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Trace every tool invocation on stderr")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cmd.Flags().Changed("optional-timeout") && cfg.OptionalTimeout <= 0 {
		return fmt.Errorf("--optional-timeout must be positive, got: %s", cfg.OptionalTimeout)
	}

	return nil
}

// BuildOverrides returns the flags explicitly set on the command line, keyed
// by config variable name, so they can be layered over a config file.
// Flags left at their defaults are omitted.
func BuildOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	if cmd.Flags().Changed("optional-timeout") {
		overrides["OPTIONAL_TIMEOUT"] = cfg.OptionalTimeout.String()
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"verbose":  {"VERBOSE", cfg.Verbose},
		"no-color": {"NO_COLOR", cfg.NoColor},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = fmt.Sprintf("%t", mapping.val)
		}
	}

	return overrides
}
