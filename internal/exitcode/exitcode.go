// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including leaving the menu
	// through end of input or an interrupt.
	Success = 0

	// UserError indicates a user error (bad args, unknown command or flag).
	UserError = 1

	// ConfigError indicates an unreadable settings file or environment.
	ConfigError = 2
)
