// Package testutil provides testing utilities.
package testutil

import (
	"fmt"

	"todo/internal/service"
)

// FakeService is a service.Service for front-end tests.
// It performs no validation and returns the injected errors instead,
// so callers can be tested against failures they would otherwise pre-empt.
type FakeService struct {
	tasks  []service.Task
	nextID int

	// Calls records each mutating call as "op id", e.g. "toggle 3".
	Calls []string

	// Error injection for testing
	CreateErr error
	UpdateErr error
}

var _ service.Service = (*FakeService)(nil)

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task and returns its id.
func (f *FakeService) AddTask(title, description string, completed bool) int {
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	return id
}

// Create implements service.Service.
func (f *FakeService) Create(title, description string) (service.Task, error) {
	f.Calls = append(f.Calls, fmt.Sprintf("create %d", f.nextID))
	if f.CreateErr != nil {
		return service.Task{}, f.CreateErr
	}
	f.AddTask(title, description, false)
	return f.tasks[len(f.tasks)-1], nil
}

// ListAll implements service.Service.
func (f *FakeService) ListAll() []service.Task {
	return append([]service.Task(nil), f.tasks...)
}

// Get implements service.Service.
func (f *FakeService) Get(id int) (service.Task, bool) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Update implements service.Service.
func (f *FakeService) Update(id int, patch service.TaskPatch) (bool, error) {
	f.Calls = append(f.Calls, fmt.Sprintf("update %d", id))
	i := f.index(id)
	if i < 0 {
		return false, nil
	}
	if f.UpdateErr != nil {
		return false, f.UpdateErr
	}
	if patch.Title != nil {
		f.tasks[i].Title = *patch.Title
	}
	if patch.Description != nil {
		f.tasks[i].Description = *patch.Description
	}
	return true, nil
}

// Delete implements service.Service.
func (f *FakeService) Delete(id int) bool {
	f.Calls = append(f.Calls, fmt.Sprintf("delete %d", id))
	i := f.index(id)
	if i < 0 {
		return false
	}
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	return true
}

// ToggleComplete implements service.Service.
func (f *FakeService) ToggleComplete(id int) bool {
	f.Calls = append(f.Calls, fmt.Sprintf("toggle %d", id))
	i := f.index(id)
	if i < 0 {
		return false
	}
	f.tasks[i].Completed = !f.tasks[i].Completed
	return true
}

func (f *FakeService) index(id int) int {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
