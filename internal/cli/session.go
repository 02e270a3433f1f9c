// Package cli runs the interactive menu session.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

// MenuTitle is printed at the top of the menu.
const MenuTitle = "TODO LIST MANAGER"

// Session sequences menu choices against a single service.
type Session struct {
	registry *commands.Registry
	cfg      *config.Config
	svc      service.Service
	in       console.Prompter
	log      zerolog.Logger
}

// NewSession creates a session. The logger is attached to the context
// passed to every command.
func NewSession(registry *commands.Registry, cfg *config.Config, svc service.Service, in console.Prompter, log zerolog.Logger) *Session {
	return &Session{
		registry: registry,
		cfg:      cfg,
		svc:      svc,
		in:       in,
		log:      log,
	}
}

// Run shows the menu until the user quits, input ends or ctx is cancelled.
// Returns the exit code.
func (s *Session) Run(ctx context.Context, out io.Writer) int {
	ctx = s.log.WithContext(ctx)

	cmds := s.registry.All()
	entries := make([]output.MenuEntry, len(cmds))
	for i, cmd := range cmds {
		entries[i] = output.MenuEntry{Key: cmd.Key(), Label: cmd.Synopsis()}
	}
	choices := choiceRange(cmds)

	fmt.Fprintln(out, "Welcome to the Todo List Manager!")

	for {
		output.FormatMenu(out, MenuTitle, entries)

		choice, err := s.in.Prompt(ctx, out, fmt.Sprintf("Select an option (%s): ", choices))
		if err != nil {
			return s.end(out, err)
		}
		choice = strings.TrimSpace(choice)

		cmd, ok := s.registry.Find(choice)
		if !ok {
			s.log.Debug().Str("choice", choice).Msg("invalid menu choice")
			fmt.Fprintf(out, "\nInvalid option! Please select a number between %s.\n", choices)
			continue
		}

		s.log.Debug().Str("command", cmd.Name()).Msg("dispatch")
		if err := cmd.Run(ctx, s.cfg, s.svc, s.in, out); err != nil {
			return s.end(out, err)
		}
		if cmd.Exits() {
			return exitcode.Success
		}

		if !s.cfg.NoPause {
			if _, err := s.in.Prompt(ctx, out, "\nPress Enter to continue..."); err != nil {
				return s.end(out, err)
			}
		}
	}
}

// end prints the farewell for err and returns the exit code.
func (s *Session) end(out io.Writer, err error) int {
	switch {
	case errors.Is(err, console.ErrInterrupted):
		fmt.Fprintln(out, "\n\nApplication interrupted. Goodbye!")
		return exitcode.Success
	case errors.Is(err, io.EOF):
		fmt.Fprintln(out, "\n\nGoodbye!")
		return exitcode.Success
	default:
		s.log.Error().Err(err).Msg("session aborted")
		fmt.Fprintf(out, "\nError: %v\n", err)
		return exitcode.IOError
	}
}

// choiceRange renders the valid menu keys as "first-last".
func choiceRange(cmds []commands.Command) string {
	if len(cmds) == 0 {
		return ""
	}
	first, last := cmds[0].Key(), cmds[len(cmds)-1].Key()
	if first == last {
		return first
	}
	return first + "-" + last
}
