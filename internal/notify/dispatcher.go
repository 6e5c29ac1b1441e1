package notify

import (
	"fmt"
	"log/slog"
	"time"
)

// Log records sent notifications for the audit trail.
// Defined at the consumer side per Go conventions.
type Log interface {
	AddNotification(taskID int64, message string, sentAt time.Time) error
}

// Dispatcher runs one detached notification job per task mutation,
// modelling an external delivery such as sending an email. Jobs are
// fire-and-forget: nothing waits on them and shutdown abandons any
// still pending.
type Dispatcher struct {
	delay time.Duration
	log   Log
}

// NewDispatcher creates a Dispatcher with the given simulated delivery
// latency. log may be nil, in which case sent notifications are only
// logged, not persisted.
func NewDispatcher(delay time.Duration, log Log) *Dispatcher {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &Dispatcher{
		delay: delay,
		log:   log,
	}
}

// Dispatch schedules the notification action for taskID and returns
// immediately. Jobs for different calls run independently and
// concurrently; no ordering is guaranteed between them, even for the
// same task.
func (d *Dispatcher) Dispatch(taskID int64) {
	go d.run(taskID, time.Now())
}

func (d *Dispatcher) run(taskID int64, submitted time.Time) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("notification job panicked",
				"task_id", taskID,
				"panic", r)
		}
	}()

	time.Sleep(d.delay)

	slog.Info("notification sent",
		"task_id", taskID,
		"elapsed", time.Since(submitted))

	if d.log == nil {
		return
	}
	msg := fmt.Sprintf("Notification sent for task %d", taskID)
	if err := d.log.AddNotification(taskID, msg, time.Now()); err != nil {
		slog.Warn("recording notification failed",
			"task_id", taskID,
			"error", err)
	}
}
