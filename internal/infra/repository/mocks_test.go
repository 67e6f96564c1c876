//go:build unit

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
)

// MockQueries stands in for both the generated queries and sqlc.DBTX.
type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) LockFirstAvailableRoomByType(ctx context.Context, db sqlc.DBTX, roomType string) (sqlc.Rooms, error) {
	args := m.Called(ctx, db, roomType)
	return args.Get(0).(sqlc.Rooms), args.Error(1)
}

func (m *MockQueries) MarkRoomOccupied(ctx context.Context, db sqlc.DBTX, id int32) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int32, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockQueries) CreateSessionIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSessionIfAbsentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) UpdateSessionState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSessionStateParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) CreateEscalation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEscalationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) ClaimQueuedNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimQueuedNotificationJobsParams) ([]sqlc.NotificationJobs, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.NotificationJobs), args.Error(1)
}

func (m *MockQueries) UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// sqlc.DBTX implementation for MockQueries
func (m *MockQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}
