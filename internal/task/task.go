package task

import "time"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a tracked work item. IDs are assigned by the Store and are
// unique for the lifetime of the process. Tasks are passed around by
// value so that event payloads are stable snapshots.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Update describes a partial modification to a task. Nil fields are
// left untouched.
type Update struct {
	Title       *string
	Description *string
	Status      *Status
}

// Filter specifies criteria for listing tasks.
type Filter struct {
	Status string
	Limit  int
}
