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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string     { return "delete" }
func (c *DeleteCmd) Key() string      { return "4" }
func (c *DeleteCmd) Synopsis() string { return "Delete task" }
func (c *DeleteCmd) Exits() bool      { return false }

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in console.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Delete Task ---")

	id, ok, err := promptTaskID(ctx, in, out, "delete")
	if err != nil || !ok {
		return err
	}

	if err := svc.Delete(ctx, id); err != nil {
		reportError(out, id, err)
		return nil
	}

	zerolog.Ctx(ctx).Debug().Int("id", id).Msg("task deleted")
	fmt.Fprintf(out, "Task %d deleted successfully!\n", id)
	return nil
}
