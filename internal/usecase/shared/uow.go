package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotel-telegram-bot/internal/domain/booking"
	"hotel-telegram-bot/internal/domain/escalation"
	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/domain/session"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Sessions() SessionRepository
	Escalations() EscalationRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByTelegramID(ctx context.Context, telegramID int64) (*UserSnapshot, error)
	SessionByKey(ctx context.Context, key session.Key) (*session.Session, error)
}

type RoomRepository interface {
	// LockAvailable row-locks the lowest-id available room of the type,
	// skipping rows locked by concurrent bookings.
	LockAvailable(ctx context.Context, tx sqlc.DBTX, roomType room.Type) (*room.Room, error)
	// MarkOccupied reports false when the room was no longer available.
	MarkOccupied(ctx context.Context, tx sqlc.DBTX, roomID int32) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int32, error)
}

type SessionRepository interface {
	// CreateIfAbsent reports whether a new row was inserted.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, s *session.Session) (bool, error)
	SaveState(ctx context.Context, tx sqlc.DBTX, s *session.Session) error
}

type EscalationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, e *escalation.Escalation) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimQueued(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}
