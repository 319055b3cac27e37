// Package exitcode defines named exit codes for the devcheck CLI.
//
// Tool outcomes never affect the exit code: a completed check exits Success
// even when every tool is missing.
package exitcode

const (
	Success     = 0   // Check completed
	Error       = 1   // Invalid flags or unreadable config
	Interrupted = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
