package service

// Service defines the task store operations.
// Front ends depend only on this interface, never on a concrete store.
//
// Operations addressing an id that does not exist report it through the
// boolean result. Only malformed input yields an error.
type Service interface {
	// Create validates the input, assigns the next id and appends the task.
	Create(title, description string) (Task, error)

	// ListAll returns copies of every task in insertion order.
	ListAll() []Task

	// Get returns a copy of the task with the given id.
	Get(id int) (Task, bool)

	// Update applies the non-nil fields of patch.
	// Returns false if the task does not exist.
	Update(id int, patch TaskPatch) (bool, error)

	// Delete removes the task permanently.
	Delete(id int) bool

	// ToggleComplete flips the completion flag.
	ToggleComplete(id int) bool
}
