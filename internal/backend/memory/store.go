// Package memory implements service.Service as an in-process task list.
package memory

import (
	"todo/internal/service"
)

// Store holds tasks in insertion order and assigns ids.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	tasks  []service.Task
	nextID int
}

var _ service.Service = (*Store)(nil)

// New creates an empty store. The first task gets id 1.
func New() *Store {
	return &Store{nextID: 1}
}

// Create implements service.Service.
func (s *Store) Create(title, description string) (service.Task, error) {
	trimmed, err := service.ValidateTitle(title)
	if err != nil {
		return service.Task{}, err
	}
	if err := service.ValidateDescription(description); err != nil {
		return service.Task{}, err
	}

	task := service.Task{
		ID:          s.nextID,
		Title:       trimmed,
		Description: description,
	}
	s.tasks = append(s.tasks, task)
	s.nextID++
	return task, nil
}

// ListAll implements service.Service.
func (s *Store) ListAll() []service.Task {
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get implements service.Service.
func (s *Store) Get(id int) (service.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return service.Task{}, false
	}
	return s.tasks[i], true
}

// Update implements service.Service.
// Both fields are validated before either is written.
func (s *Store) Update(id int, patch service.TaskPatch) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}

	var title string
	if patch.Title != nil {
		var err error
		if title, err = service.ValidateTitle(*patch.Title); err != nil {
			return false, err
		}
	}
	if patch.Description != nil {
		if err := service.ValidateDescription(*patch.Description); err != nil {
			return false, err
		}
	}

	if patch.Title != nil {
		s.tasks[i].Title = title
	}
	if patch.Description != nil {
		s.tasks[i].Description = *patch.Description
	}
	return true, nil
}

// Delete implements service.Service.
func (s *Store) Delete(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// ToggleComplete implements service.Service.
func (s *Store) ToggleComplete(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}

// index returns the position of the task with the given id, or -1.
func (s *Store) index(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
