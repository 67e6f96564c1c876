package dedup

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel-telegram-bot/internal/pkg/errs"
)

const keyPrefix = "hotel-bot:update:"

// Deduplicator reports whether an update id is seen for the first time.
// Telegram retries webhook deliveries it considers failed.
type Deduplicator interface {
	Claim(ctx context.Context, updateID int) (bool, error)
	Release(ctx context.Context, updateID int) error
}

type RedisDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduplicator(client *redis.Client, ttl time.Duration) *RedisDeduplicator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDeduplicator{client: client, ttl: ttl}
}

func (d *RedisDeduplicator) Claim(ctx context.Context, updateID int) (bool, error) {
	ok, err := d.client.SetNX(ctx, keyPrefix+strconv.Itoa(updateID), 1, d.ttl).Result()
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "redis setnx"), errs.ErrUpstreamUnavailable)
	}
	return ok, nil
}

// Release forgets updateID so a redelivery is processed again.
func (d *RedisDeduplicator) Release(ctx context.Context, updateID int) error {
	if err := d.client.Del(ctx, keyPrefix+strconv.Itoa(updateID)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "redis del"), errs.ErrUpstreamUnavailable)
	}
	return nil
}

// NopDeduplicator accepts every update. Used when Redis is not configured.
type NopDeduplicator struct{}

func (NopDeduplicator) Claim(context.Context, int) (bool, error) { return true, nil }

func (NopDeduplicator) Release(context.Context, int) error { return nil }

// Connect parses url and pings the server. Callers fall back to
// NopDeduplicator on error.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid REDIS_URL"), errs.ErrConfiguration)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Mark(errs.Wrap(err, "redis ping"), errs.ErrUpstreamUnavailable)
	}
	return client, nil
}
