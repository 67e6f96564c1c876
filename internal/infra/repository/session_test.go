//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/infra"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	key, err := session.NewKey("HotelTelegramBot", 555)
	require.NoError(t, err)
	return session.NewSession(key, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestSessionRepository_CreateIfAbsent(t *testing.T) {
	s := newSession(t)
	want := sqlc.CreateSessionIfAbsentParams{
		AppName:   "HotelTelegramBot",
		UserID:    "555",
		SessionID: "555",
		State:     []byte(`{"history":[]}`),
	}

	t.Run("inserted", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("CreateSessionIfAbsent", mock.Anything, mock.Anything, want).Return(int64(1), nil)

		created, err := NewSessionRepository(mockQueries).CreateIfAbsent(context.Background(), mockQueries, s)

		require.NoError(t, err)
		assert.True(t, created)
		mockQueries.AssertExpectations(t)
	})

	t.Run("conflict leaves the existing row", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("CreateSessionIfAbsent", mock.Anything, mock.Anything, want).Return(int64(0), nil)

		created, err := NewSessionRepository(mockQueries).CreateIfAbsent(context.Background(), mockQueries, s)

		require.NoError(t, err)
		assert.False(t, created)
	})
}

func TestSessionRepository_SaveState(t *testing.T) {
	s := newSession(t)
	s.ReplaceHistory([]session.Message{{Role: session.RoleUser, Text: "hi"}}, time.Now())

	t.Run("updates state", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("UpdateSessionState", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateSessionStateParams) bool {
			return p.UserID == "555" && string(p.State) == `{"history":[{"role":"user","text":"hi"}]}`
		})).Return(int64(1), nil)

		err := NewSessionRepository(mockQueries).SaveState(context.Background(), mockQueries, s)

		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing row", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("UpdateSessionState", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewSessionRepository(mockQueries).SaveState(context.Background(), mockQueries, s)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
