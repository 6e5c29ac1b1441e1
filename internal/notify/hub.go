package notify

import "log/slog"

// Hub fans events out to every registered subscriber.
type Hub struct {
	registry *Registry
}

// NewHub creates a Hub backed by the given registry.
func NewHub(registry *Registry) *Hub {
	return &Hub{registry: registry}
}

// Publish delivers event to each subscriber in the current registry
// snapshot. Delivery is best-effort and at-most-once: a subscriber
// whose channel is full, or who unregistered after the snapshot was
// taken, is skipped. Publish therefore never blocks and is safe to
// call inline on the mutation path.
func (h *Hub) Publish(event Event) {
	subs := h.registry.Snapshot()

	delivered := 0
	for _, s := range subs {
		select {
		case s.ch <- event:
			delivered++
		case <-s.done:
			slog.Debug("skipping departed subscriber", "subscriber_id", s.ID)
		default:
			slog.Debug("dropping event for slow subscriber",
				"subscriber_id", s.ID,
				"event_type", event.Type)
		}
	}

	slog.Debug("event published",
		"event_type", event.Type,
		"task_id", event.Task.ID,
		"subscribers", len(subs),
		"delivered", delivered)
}
