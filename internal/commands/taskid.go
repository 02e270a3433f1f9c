package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"todo/internal/console"
	"todo/internal/service"
)

// ErrInvalidTaskID indicates identifier input that is not an integer.
var ErrInvalidTaskID = errors.New("invalid task ID")

// ParseTaskID parses a task identifier typed by the user.
// Surrounding whitespace is ignored.
func ParseTaskID(s string) (int, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidTaskID, "%q", s)
	}
	return id, nil
}

// promptTaskID asks for an identifier. ok is false when the input was
// rejected and the message already printed.
func promptTaskID(ctx context.Context, in console.Prompter, out io.Writer, verb string) (id int, ok bool, err error) {
	raw, err := in.Prompt(ctx, out, fmt.Sprintf("Enter task ID to %s: ", verb))
	if err != nil {
		return 0, false, err
	}
	id, err = ParseTaskID(raw)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("rejected task ID")
		reportError(out, 0, err)
		return 0, false, nil
	}
	return id, true, nil
}

// reportError prints the user-facing message for a failed operation on task id.
func reportError(out io.Writer, id int, err error) {
	switch {
	case errors.Is(err, ErrInvalidTaskID):
		fmt.Fprintln(out, "Error: Please enter a valid task ID (number)!")
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(out, "Error: Task with ID %d does not exist!\n", id)
	case errors.Is(err, service.ErrInvalidTitle):
		fmt.Fprintln(out, "Error: Title cannot be empty!")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
