package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string     { return "list" }
func (c *ListCmd) Key() string      { return "2" }
func (c *ListCmd) Synopsis() string { return "List all tasks" }
func (c *ListCmd) Exits() bool      { return false }

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in console.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "\n--- All Tasks ---")

	hasAnyTasks := false
	for task := range svc.List(ctx) {
		output.FormatTask(out, task)
		hasAnyTasks = true
	}

	if !hasAnyTasks {
		fmt.Fprintln(out, "No tasks yet")
	}
	return nil
}
