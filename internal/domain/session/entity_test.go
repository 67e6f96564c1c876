//go:build unit

package session_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/domain/session"
)

func TestNewKey(t *testing.T) {
	t.Run("chat id becomes both user and session id", func(t *testing.T) {
		key, err := session.NewKey("HotelTelegramBot", 12345)
		require.NoError(t, err)
		assert.Equal(t, session.Key{AppName: "HotelTelegramBot", UserID: "12345", SessionID: "12345"}, key)
	})

	t.Run("empty app name", func(t *testing.T) {
		_, err := session.NewKey(" ", 12345)
		assert.ErrorIs(t, err, session.ErrEmptyAppName)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := session.NewKey("HotelTelegramBot", 0)
		assert.ErrorIs(t, err, session.ErrInvalidExternalID)
	})
}

func TestState_RoundTrip(t *testing.T) {
	st := session.State{History: []session.Message{
		{Role: session.RoleUser, Text: "hi"},
		{Role: session.RoleModel, Text: "hello"},
	}}

	raw, err := st.Encode()
	require.NoError(t, err)

	got, err := session.DecodeState(raw)
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestDecodeState(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		st, err := session.DecodeState([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, st.History)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := session.DecodeState([]byte(`not json`))
		assert.ErrorIs(t, err, session.ErrInvalidState)
	})

	t.Run("empty state encodes an empty list", func(t *testing.T) {
		raw, err := session.State{}.Encode()
		require.NoError(t, err)
		assert.JSONEq(t, `{"history":[]}`, string(raw))
	})
}

func TestSession_ReplaceHistory(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	key, _ := session.NewKey("HotelTelegramBot", 1)
	s := session.NewSession(key, created)

	history := make([]session.Message, 0, session.MaxHistory+10)
	for i := 0; i < session.MaxHistory+10; i++ {
		history = append(history, session.Message{Role: session.RoleUser, Text: fmt.Sprintf("m%d", i)})
	}

	later := created.Add(time.Minute)
	s.ReplaceHistory(history, later)

	got := s.History()
	require.Len(t, got, session.MaxHistory)
	assert.Equal(t, "m10", got[0].Text)
	assert.Equal(t, later, s.UpdatedAt())

	got[0].Text = "mutated"
	assert.Equal(t, "m10", s.History()[0].Text)
}
