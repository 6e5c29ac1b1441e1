package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btouchard/taskboard/internal/task"
)

func testEvent(id int64) Event {
	return NewTaskUpdated(task.Task{
		ID:     id,
		Title:  "test task",
		Status: task.StatusDone,
	})
}

func TestHub_Publish_DeliversToAllRegistered(t *testing.T) {
	t.Parallel()

	r := NewRegistry(0)
	h := NewHub(r)

	a := r.Register()
	b := r.Register()

	event := testEvent(7)
	h.Publish(event)

	for _, sub := range []*Subscriber{a, b} {
		select {
		case got := <-sub.C:
			assert.Equal(t, event, got)
		default:
			t.Fatalf("subscriber %s received nothing", sub.ID)
		}
	}
}

func TestHub_Publish_DeliversExactlyOnce(t *testing.T) {
	t.Parallel()

	r := NewRegistry(0)
	h := NewHub(r)
	sub := r.Register()

	h.Publish(testEvent(1))

	<-sub.C
	select {
	case extra := <-sub.C:
		t.Fatalf("unexpected second delivery: %+v", extra)
	default:
	}
}

func TestHub_Publish_SkipsUnregisteredSubscriber(t *testing.T) {
	t.Parallel()

	r := NewRegistry(0)
	h := NewHub(r)

	gone := r.Register()
	stays := r.Register()
	r.Unregister(gone)

	h.Publish(testEvent(3))

	select {
	case ev := <-gone.C:
		t.Fatalf("unregistered subscriber received event: %+v", ev)
	default:
	}

	select {
	case got := <-stays.C:
		assert.Equal(t, int64(3), got.Task.ID)
	default:
		t.Fatal("remaining subscriber received nothing")
	}
}

func TestHub_Publish_DropsForSlowSubscriberWithoutBlocking(t *testing.T) {
	t.Parallel()

	r := NewRegistry(1)
	h := NewHub(r)
	slow := r.Register()

	// Fill the single-slot buffer; the subscriber never drains it.
	h.Publish(testEvent(1))

	done := make(chan struct{})
	go func() {
		h.Publish(testEvent(2))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// Only the first event made it through.
	got := <-slow.C
	assert.Equal(t, int64(1), got.Task.ID)
	select {
	case ev := <-slow.C:
		t.Fatalf("dropped event was delivered: %+v", ev)
	default:
	}
}

func TestHub_Publish_NoSubscribersIsNoop(t *testing.T) {
	t.Parallel()

	h := NewHub(NewRegistry(0))
	require.NotPanics(t, func() { h.Publish(testEvent(9)) })
}
