package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/service"
)

func init() {
	Register(&QuitCmd{})
}

// QuitCmd implements the quit command.
type QuitCmd struct{}

func (c *QuitCmd) Name() string     { return "quit" }
func (c *QuitCmd) Key() string      { return "6" }
func (c *QuitCmd) Synopsis() string { return "Quit" }
func (c *QuitCmd) Exits() bool      { return true }

func (c *QuitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in console.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "\nThank you for using the Todo List Manager. Goodbye!")
	return nil
}
