package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `devcheck - Local development environment checker

USAGE
  devcheck [flags]

Checks, in order: Node.js, npm, Git, and (optionally) VS Code, then prints
the Go runtime version, the current directory, and the next steps.

FLAGS
  --config <path>                Config file: KEY=VALUE lines, or TOML when named *.toml
  --optional-timeout <duration>  Timeout for optional tool checks (default: 5s)
  --no-color                     Disable colored output
  -v, --verbose                  Trace every tool invocation on stderr
  -h, --help                     Show this help text
  --version                      Show version, commit, build date

CONFIG KEYS
  OPTIONAL_TIMEOUT   optional_timeout   duration ("750ms") or whole seconds ("5")
  VERBOSE            verbose            true/false
  NO_COLOR           no_color           true/false

  Command-line flags override the config file.

STATUS MARKERS
  ✓   tool found and working
  ✗   required tool missing or failing
  ?   optional tool missing (does not block anything)

EXIT CODES
  0   Success       Check completed (regardless of which tools were found)
  1   Error         Invalid flags or unreadable config file
  130 Interrupted   SIGINT or SIGTERM received

EXAMPLES
  # Run the check
  devcheck

  # Give a slow editor more time to answer
  devcheck --optional-timeout 15s

  # Plain output for logs, with a probe trace on stderr
  devcheck --no-color -v
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
