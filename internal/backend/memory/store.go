// Package memory implements the service.Service interface with an in-process task map.
package memory

import (
	"context"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"todo/internal/service"
)

// Store is an in-memory task store for a single session.
// It is not safe for concurrent use.
type Store struct {
	tasks  map[int]*service.Task
	nextID int
}

var _ service.Service = (*Store)(nil)

// New creates an empty store whose first identifier is 1.
func New() *Store {
	return &Store{
		tasks:  make(map[int]*service.Task),
		nextID: 1,
	}
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add creates a task with the next identifier.
// A rejected title does not consume an identifier.
func (s *Store) Add(_ context.Context, title, description string) (int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, errors.Wrap(service.ErrInvalidTitle, "add task")
	}

	id := s.nextID
	s.tasks[id] = &service.Task{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
	}
	s.nextID++
	return id, nil
}

// List yields copies of the stored tasks by ascending identifier.
func (s *Store) List(_ context.Context) iter.Seq[service.Task] {
	return func(yield func(service.Task) bool) {
		for _, id := range slices.Sorted(maps.Keys(s.tasks)) {
			t, ok := s.tasks[id]
			if !ok {
				// Deleted by the consumer mid-iteration.
				continue
			}
			if !yield(*t) {
				return
			}
		}
	}
}

// Get returns a copy of the task.
func (s *Store) Get(_ context.Context, id int) (service.Task, error) {
	t, err := s.lookup(id)
	if err != nil {
		return service.Task{}, err
	}
	return *t, nil
}

// Update validates every supplied field before writing any of them.
func (s *Store) Update(_ context.Context, id int, upd service.TaskUpdate) error {
	t, err := s.lookup(id)
	if err != nil {
		return err
	}

	var title string
	if upd.Title != nil {
		title = strings.TrimSpace(*upd.Title)
		if title == "" {
			return errors.Wrapf(service.ErrInvalidTitle, "update task %d", id)
		}
	}

	if upd.Title != nil {
		t.Title = title
	}
	if upd.Description != nil {
		t.Description = strings.TrimSpace(*upd.Description)
	}
	return nil
}

// Delete removes the task. The counter is left alone so the identifier is retired.
func (s *Store) Delete(_ context.Context, id int) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.tasks, id)
	return nil
}

// ToggleCompleted flips the completed flag.
func (s *Store) ToggleCompleted(_ context.Context, id int) (bool, error) {
	t, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	t.Completed = !t.Completed
	return t.Completed, nil
}

func (s *Store) lookup(id int) (*service.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, errors.Wrapf(service.ErrNotFound, "task %d", id)
	}
	return t, nil
}
