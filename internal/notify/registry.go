package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// DefaultBufferSize is the per-subscriber delivery channel depth used
// when no explicit size is configured.
const DefaultBufferSize = 16

// Subscriber is a live registry entry. Events arrive on C. Done() is
// closed when the subscriber is unregistered. The delivery channel
// itself is never closed, so a broadcast racing an unregister drops
// the event instead of panicking.
type Subscriber struct {
	ID string
	C  <-chan Event

	ch   chan Event
	done chan struct{}
}

// Done returns a channel closed when the subscriber has been removed
// from the registry.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// Registry tracks currently connected subscribers. Register,
// Unregister and Snapshot are serialized against each other;
// Snapshot never blocks on a slow consumer because it only copies
// membership, it does not deliver anything.
type Registry struct {
	mu      sync.Mutex
	subs    map[string]*Subscriber
	bufSize int
}

// NewRegistry creates a Registry whose subscribers get delivery
// channels of the given depth.
func NewRegistry(bufSize int) *Registry {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &Registry{
		subs:    make(map[string]*Subscriber),
		bufSize: bufSize,
	}
}

// Register adds a new subscriber with a fresh delivery channel and
// returns its handle.
func (r *Registry) Register() *Subscriber {
	ch := make(chan Event, r.bufSize)
	s := &Subscriber{
		ID:   uuid.NewString(),
		C:    ch,
		ch:   ch,
		done: make(chan struct{}),
	}

	r.mu.Lock()
	r.subs[s.ID] = s
	r.mu.Unlock()

	slog.Debug("subscriber registered", "subscriber_id", s.ID)
	return s
}

// Unregister removes s from the registry. It is an idempotent no-op
// on an already-removed subscriber and is safe to call concurrently
// with a broadcast in progress.
func (r *Registry) Unregister(s *Subscriber) {
	if s == nil {
		return
	}

	r.mu.Lock()
	_, ok := r.subs[s.ID]
	if ok {
		delete(r.subs, s.ID)
		close(s.done)
	}
	r.mu.Unlock()

	if ok {
		slog.Debug("subscriber unregistered", "subscriber_id", s.ID)
	}
}

// Snapshot returns the membership at call time. The returned slice is
// a point-in-time copy: registry mutations after Snapshot returns do
// not affect it.
func (r *Registry) Snapshot() []*Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := make([]*Subscriber, 0, len(r.subs))
	for _, s := range r.subs {
		subs = append(subs, s)
	}
	return subs
}

// Count returns the number of currently registered subscribers.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
