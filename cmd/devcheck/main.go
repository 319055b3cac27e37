package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/devcheck/internal/checker"
	"github.com/CodexForgeBR/devcheck/internal/cli"
	"github.com/CodexForgeBR/devcheck/internal/config"
	"github.com/CodexForgeBR/devcheck/internal/exitcode"
	"github.com/CodexForgeBR/devcheck/internal/logging"
	sighandler "github.com/CodexForgeBR/devcheck/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	cfg := config.NewDefaultConfig()
	code := exitcode.Success

	rootCmd := newRootCmd(cfg, stdout, &code)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		return exitcode.Error
	}
	return code
}

func newRootCmd(cfg *config.Config, stdout io.Writer, code *int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "devcheck",
		Short:   "Local development environment checker",
		Long:    "devcheck probes for Node.js, npm, Git and VS Code and prints the next setup steps.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			c, err := runCheck(cmd, cfg, stdout)
			*code = c
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	return rootCmd
}

func runCheck(cmd *cobra.Command, cfg *config.Config, stdout io.Writer) (int, error) {
	finalCfg, err := config.LoadWithPrecedence(cfg.ConfigFile, cli.BuildOverrides(cmd, cfg))
	if err != nil {
		return exitcode.Error, fmt.Errorf("load config: %w", err)
	}
	finalCfg.ConfigFile = cfg.ConfigFile
	cfg = finalCfg

	if cfg.NoColor {
		color.NoColor = true
	}
	logging.SetVerbose(cfg.Verbose)
	if cfg.ConfigFile != "" {
		logging.Debug(fmt.Sprintf("loaded config from %s", cfg.ConfigFile))
	}
	logging.Debug(fmt.Sprintf("optional tool timeout: %s", cfg.OptionalTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted, stopping check")
	})
	defer handler.Stop()

	checker.RunCheck(ctx, stdout, checker.Options{
		OptionalTimeout: cfg.OptionalTimeout,
		Trace:           logging.NewTrace(cfg.Verbose),
	})

	if handler.Interrupted() {
		return exitcode.Interrupted, nil
	}
	return exitcode.Success, nil
}
