package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Key() string      { return "1" }
func (c *AddCmd) Synopsis() string { return "Add new task" }
func (c *AddCmd) Exits() bool      { return false }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in console.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Add New Task ---")

	title, err := in.Prompt(ctx, out, "Enter task title (required): ")
	if err != nil {
		return err
	}
	// Reject before prompting for a description.
	if strings.TrimSpace(title) == "" {
		reportError(out, 0, service.ErrInvalidTitle)
		return nil
	}

	description, err := in.Prompt(ctx, out, "Enter task description (optional, press Enter to skip): ")
	if err != nil {
		return err
	}

	id, err := svc.Add(ctx, title, description)
	if err != nil {
		reportError(out, 0, err)
		return nil
	}

	zerolog.Ctx(ctx).Debug().Int("id", id).Msg("task added")
	fmt.Fprintf(out, "Task added successfully with ID: %d\n", id)
	return nil
}
