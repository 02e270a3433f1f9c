package service

import "errors"

var (
	// ErrInvalidTitle indicates an empty or whitespace-only title.
	ErrInvalidTitle = errors.New("title cannot be empty")

	// ErrNotFound indicates an identifier that is not in the store.
	ErrNotFound = errors.New("task not found")
)

// Task represents a single task item.
type Task struct {
	ID          int
	Title       string
	Description string // empty when absent
	Completed   bool
}

// HasDescription reports whether the task carries a description.
func (t Task) HasDescription() bool {
	return t.Description != ""
}

// TaskUpdate lists the fields to change on a task.
// A nil field keeps the current value. A blank Title is rejected;
// a blank Description clears it.
type TaskUpdate struct {
	Title       *string
	Description *string
}
