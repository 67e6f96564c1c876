package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type UserSnapshot struct {
	ID         int32
	TelegramID int64
	FirstName  *string
	LastName   *string
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
