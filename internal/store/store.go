package store

import "time"

// NotificationRecord is a persisted entry in the notification audit
// log, written by the dispatcher after each simulated delivery.
type NotificationRecord struct {
	ID      int64
	TaskID  int64
	Message string
	SentAt  time.Time
}

// NotificationFilter specifies criteria for listing notifications.
type NotificationFilter struct {
	TaskID int64
	Limit  int
}
