// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates a normal end of session: quit, end of input or interrupt.
	Success = 0

	// UserError indicates bad command-line flags.
	UserError = 1

	// IOError indicates input could not be read.
	IOError = 2
)
