package notify

import "github.com/btouchard/taskboard/internal/task"

// EventTaskUpdated is the wire-level event type clients match on.
const EventTaskUpdated = "task_updated"

// Event is the payload fanned out to subscribers when a task changes.
// It is constructed once per broadcast, carries a value copy of the
// task, and is never mutated after construction.
type Event struct {
	Type string    `json:"type"`
	Task task.Task `json:"task"`
}

// NewTaskUpdated builds a task_updated event for t.
func NewTaskUpdated(t task.Task) Event {
	return Event{Type: EventTaskUpdated, Task: t}
}
