package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string     { return "toggle" }
func (c *ToggleCmd) Key() string      { return "5" }
func (c *ToggleCmd) Synopsis() string { return "Toggle complete/incomplete" }
func (c *ToggleCmd) Exits() bool      { return false }

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in console.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Toggle Task Status ---")

	id, ok, err := promptTaskID(ctx, in, out, "toggle")
	if err != nil || !ok {
		return err
	}

	completed, err := svc.ToggleCompleted(ctx, id)
	if err != nil {
		reportError(out, id, err)
		return nil
	}

	zerolog.Ctx(ctx).Debug().Int("id", id).Bool("completed", completed).Msg("task toggled")
	state := "incomplete"
	if completed {
		state = "completed"
	}
	fmt.Fprintf(out, "Task %d marked as %s!\n", id, state)
	return nil
}
