package notify

import "github.com/btouchard/taskboard/internal/task"

// Service is the single entry point the request layer calls after a
// task mutation has been committed to the store.
type Service struct {
	dispatcher *Dispatcher
	hub        *Hub
}

// NewService wires the dispatcher and hub into one mutation callback.
func NewService(dispatcher *Dispatcher, hub *Hub) *Service {
	return &Service{
		dispatcher: dispatcher,
		hub:        hub,
	}
}

// OnTaskUpdated schedules the background notification job for t and
// broadcasts a task_updated event to every connected subscriber. It
// returns without waiting on the job and never surfaces an error:
// the mutation's success was determined before this runs.
func (s *Service) OnTaskUpdated(t task.Task) {
	s.dispatcher.Dispatch(t.ID)
	s.hub.Publish(NewTaskUpdated(t))
}
