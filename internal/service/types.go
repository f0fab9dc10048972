// Package service defines the task model and the store interface the front ends consume.
package service

// Status labels shown to users.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Task represents a single to-do item.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
}

// Status returns the display label for the task's completion state.
func (t Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}

// TaskPatch carries the fields of an update. A nil field is left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
}

// String returns a pointer to s, for building a TaskPatch.
func String(s string) *string {
	return &s
}
