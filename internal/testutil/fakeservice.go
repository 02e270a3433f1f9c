// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"iter"

	"todo/internal/backend/memory"
	"todo/internal/service"
)

// FakeService wraps the in-memory store, records calls and injects errors.
type FakeService struct {
	store *memory.Store

	// Calls lists the operations invoked, in order.
	Calls []string

	// Error injection for testing
	AddErr    error
	GetErr    error
	UpdateErr error
	DeleteErr error
	ToggleErr error
}

var _ service.Service = (*FakeService)(nil)

// NewFakeService creates a FakeService backed by an empty store.
func NewFakeService() *FakeService {
	return &FakeService{store: memory.New()}
}

// AddTask adds a task directly, bypassing call recording. Panics on invalid input.
func (f *FakeService) AddTask(title, description string) int {
	id, err := f.store.Add(context.Background(), title, description)
	if err != nil {
		panic(err)
	}
	return id
}

// Task returns the stored task and whether it exists.
func (f *FakeService) Task(id int) (service.Task, bool) {
	t, err := f.store.Get(context.Background(), id)
	return t, err == nil
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, title, description string) (int, error) {
	f.Calls = append(f.Calls, "Add")
	if f.AddErr != nil {
		return 0, f.AddErr
	}
	return f.store.Add(ctx, title, description)
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context) iter.Seq[service.Task] {
	f.Calls = append(f.Calls, "List")
	return f.store.List(ctx)
}

// Get implements service.Service.
func (f *FakeService) Get(ctx context.Context, id int) (service.Task, error) {
	f.Calls = append(f.Calls, "Get")
	if f.GetErr != nil {
		return service.Task{}, f.GetErr
	}
	return f.store.Get(ctx, id)
}

// Update implements service.Service.
func (f *FakeService) Update(ctx context.Context, id int, upd service.TaskUpdate) error {
	f.Calls = append(f.Calls, "Update")
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	return f.store.Update(ctx, id, upd)
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, id int) error {
	f.Calls = append(f.Calls, "Delete")
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	return f.store.Delete(ctx, id)
}

// ToggleCompleted implements service.Service.
func (f *FakeService) ToggleCompleted(ctx context.Context, id int) (bool, error) {
	f.Calls = append(f.Calls, "ToggleCompleted")
	if f.ToggleErr != nil {
		return false, f.ToggleErr
	}
	return f.store.ToggleCompleted(ctx, id)
}
