//go:build unit

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-telegram-bot/internal/infra/db"
	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/pkg/errs"
)

func TestConnect(t *testing.T) {
	t.Run("malformed url is a configuration error", func(t *testing.T) {
		_, _, err := db.Connect(context.Background(), config.DBConfig{URL: "::not a url::", ConnectAttempts: 1})
		assert.True(t, errs.Is(err, errs.ErrConfiguration))
	})

	t.Run("unreachable server gives up after the configured attempts", func(t *testing.T) {
		cfg := config.DBConfig{
			URL:             "postgres://u:p@127.0.0.1:1/none?sslmode=disable&connect_timeout=1",
			ConnectAttempts: 2,
			RetryDelay:      10 * time.Millisecond,
		}

		start := time.Now()
		pool, cleanup, err := db.Connect(context.Background(), cfg)

		assert.Nil(t, pool)
		assert.Nil(t, cleanup)
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})
}
