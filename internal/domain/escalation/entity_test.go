//go:build unit

package escalation_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/domain/escalation"
	"hotel-telegram-bot/internal/pkg/clock"
)

func TestNewEscalation(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("records requester and trimmed complaint", func(t *testing.T) {
		e, err := escalation.NewEscalation(clk, 42, "42", "  The AC is broken  ")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, e.ID())
		assert.Equal(t, int64(42), e.TelegramID())
		assert.Equal(t, "42", e.SessionID())
		assert.Equal(t, "The AC is broken", e.Complaint())
		assert.Equal(t, now, e.CreatedAt())
	})

	t.Run("blank complaint", func(t *testing.T) {
		_, err := escalation.NewEscalation(clk, 42, "42", "   ")
		assert.ErrorIs(t, err, escalation.ErrEmptyComplaint)
	})

	t.Run("long complaint is truncated on a rune boundary", func(t *testing.T) {
		long := strings.Repeat("é", escalation.MaxComplaintLen)

		e, err := escalation.NewEscalation(clk, 42, "42", long)
		require.NoError(t, err)

		assert.LessOrEqual(t, len(e.Complaint()), escalation.MaxComplaintLen)
		assert.True(t, utf8.ValidString(e.Complaint()))
	})
}

func TestEscalation_EventPayload(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	e, err := escalation.NewEscalation(clk, 42, "42", "noise")
	require.NoError(t, err)

	raw, err := e.EventPayload()
	require.NoError(t, err)

	var got escalation.CreatedEvent
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, e.Event(), got)
}
