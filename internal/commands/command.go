// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/service"
)

// Command defines the interface for menu commands.
type Command interface {
	// Name returns the command name, also accepted as a menu choice.
	Name() string

	// Key returns the menu number that selects the command.
	Key() string

	// Synopsis returns the menu label.
	Synopsis() string

	// Exits returns true if the session ends after the command runs.
	Exits() bool

	// Run executes the command.
	// User errors (bad input, unknown task, empty title) are printed to out
	// and do not produce an error. A non-nil error means input ended or
	// was interrupted and the session must stop.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, in console.Prompter, out io.Writer) error
}
