//go:build unit

package dedup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/pkg/errs"
)

func TestNopDeduplicator(t *testing.T) {
	var d Deduplicator = NopDeduplicator{}

	for range 2 {
		ok, err := d.Claim(context.Background(), 7)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.NoError(t, d.Release(context.Background(), 7))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-redis-url")

	assert.True(t, errs.Is(err, errs.ErrConfiguration))
}
