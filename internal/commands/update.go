package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
//
// A blank answer to either prompt keeps the current value, so a description
// cannot be cleared from the menu once set.
type UpdateCmd struct{}

func (c *UpdateCmd) Name() string     { return "update" }
func (c *UpdateCmd) Key() string      { return "3" }
func (c *UpdateCmd) Synopsis() string { return "Update task" }
func (c *UpdateCmd) Exits() bool      { return false }

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in console.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Update Task ---")

	id, ok, err := promptTaskID(ctx, in, out, "update")
	if err != nil || !ok {
		return err
	}

	task, err := svc.Get(ctx, id)
	if err != nil {
		reportError(out, id, err)
		return nil
	}

	fmt.Fprint(out, "Current task: ")
	output.FormatTask(out, task)

	var upd service.TaskUpdate

	title, err := in.Prompt(ctx, out, fmt.Sprintf("Enter new title (current: '%s', press Enter to keep current): ", task.Title))
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) != "" {
		upd.Title = &title
	}

	current := task.Description
	if !task.HasDescription() {
		current = "None"
	}
	description, err := in.Prompt(ctx, out, fmt.Sprintf("Enter new description (current: '%s', press Enter to keep current): ", current))
	if err != nil {
		return err
	}
	if strings.TrimSpace(description) != "" {
		upd.Description = &description
	}

	if err := svc.Update(ctx, id, upd); err != nil {
		reportError(out, id, err)
		return nil
	}

	zerolog.Ctx(ctx).Debug().
		Int("id", id).
		Bool("title", upd.Title != nil).
		Bool("description", upd.Description != nil).
		Msg("task updated")
	fmt.Fprintf(out, "Task %d updated successfully!\n", id)
	return nil
}
