//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/infra"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/usecase/shared"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	runAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	mockQueries := new(MockQueries)
	mockQueries.On("CreateNotificationJob", mock.Anything, mock.Anything, sqlc.CreateNotificationJobParams{
		Kind:    "escalation",
		Topic:   "escalation.created",
		Payload: []byte(`{}`),
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  shared.JobStatusQueued,
	}).Return(nil)

	err := NewNotificationRepository(mockQueries).CreateJob(context.Background(), mockQueries, "escalation", "escalation.created", []byte(`{}`), runAt)

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestNotificationRepository_ClaimQueued(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("maps rows", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("ClaimQueuedNotificationJobs", mock.Anything, mock.Anything, sqlc.ClaimQueuedNotificationJobsParams{
			RunAt: pgtype.Timestamptz{Time: now, Valid: true},
			Limit: 10,
		}).Return([]sqlc.NotificationJobs{{
			ID:       id,
			Kind:     "escalation",
			Topic:    "escalation.created",
			Payload:  []byte(`{"a":1}`),
			RunAt:    pgtype.Timestamptz{Time: now, Valid: true},
			Status:   shared.JobStatusQueued,
			Attempts: 2,
		}}, nil)

		jobs, err := NewNotificationRepository(mockQueries).ClaimQueued(context.Background(), mockQueries, now, 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, id, jobs[0].ID)
		assert.Equal(t, int32(2), jobs[0].Attempts)
		assert.Equal(t, "escalation.created", jobs[0].Topic)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("ClaimQueuedNotificationJobs", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.NotificationJobs(nil), assert.AnError)

		_, err := NewNotificationRepository(mockQueries).ClaimQueued(context.Background(), mockQueries, now, 10)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_UpdateJobStatus(t *testing.T) {
	id := uuid.New()
	msg := "broker down"

	mockQueries := new(MockQueries)
	mockQueries.On("UpdateNotificationJobStatus", mock.Anything, mock.Anything, sqlc.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    shared.JobStatusFailed,
		LastError: pgtype.Text{String: msg, Valid: true},
	}).Return(nil)

	err := NewNotificationRepository(mockQueries).UpdateJobStatus(context.Background(), mockQueries, id, shared.JobStatusFailed, &msg)

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}
