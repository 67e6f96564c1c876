package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hotel-telegram-bot/internal/pkg/clock"
)

// KeyedLimiter holds one token bucket per key.
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*bucket
	every    rate.Limit
	burst    int
	clock    clock.Clock
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New returns a limiter allowing perMinute events per key with the given burst.
// A non-positive perMinute disables limiting.
func New(perMinute, burst int, clk clock.Clock) *KeyedLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}
	return &KeyedLimiter{
		limiters: make(map[string]*bucket),
		every:    limit,
		burst:    burst,
		clock:    clk,
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	b, exists := k.limiters[key]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(k.every, k.burst)}
		k.limiters[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Sweep drops buckets not used for at least idle and returns how many were
// dropped. A dropped key starts again with a full burst.
func (k *KeyedLimiter) Sweep(idle time.Duration) int {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := k.clock.Now().Add(-idle)
	removed := 0
	for key, b := range k.limiters {
		if !b.lastSeen.After(cutoff) {
			delete(k.limiters, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked keys.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}
