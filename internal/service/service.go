// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"iter"
)

// Service defines the interface for task backend operations.
// Commands only talk to tasks through this interface.
type Service interface {
	// Add creates a task and returns its identifier.
	// Title and description are trimmed; a blank description is stored as absent.
	// Returns ErrInvalidTitle if the title is blank.
	Add(ctx context.Context, title, description string) (int, error)

	// List returns tasks ordered by ascending identifier.
	// The sequence reads current state each time it is iterated.
	List(ctx context.Context) iter.Seq[Task]

	// Get returns the task with the given identifier.
	Get(ctx context.Context, id int) (Task, error)

	// Update applies the supplied fields of upd to a task.
	Update(ctx context.Context, id int, upd TaskUpdate) error

	// Delete removes a task. Its identifier is never reissued.
	Delete(ctx context.Context, id int) error

	// ToggleCompleted flips the completed flag and returns the new value.
	ToggleCompleted(ctx context.Context, id int) (bool, error)
}
