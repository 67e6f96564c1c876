package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/pkg/errs"
)

// Connect opens a pool and pings it, retrying up to cfg.ConnectAttempts times
// with cfg.RetryDelay between attempts. Only the initial connection is retried.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, errs.Mark(errs.Wrap(err, "invalid DATABASE_URL"), errs.ErrConfiguration)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pool, err := open(ctx, poolCfg)
		if err == nil {
			cleanup := func() {
				pool.Close()
			}
			return pool, cleanup, nil
		}
		lastErr = err

		slog.Warn("database connection attempt failed",
			"attempt", attempt,
			"max_attempts", attempts,
			"error", err.Error())

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, nil, errs.Mark(errs.Wrap(ctx.Err(), "database connect canceled"), errs.ErrUpstreamUnavailable)
		case <-time.After(cfg.RetryDelay):
		}
	}

	return nil, nil, errs.Mark(errs.Wrap(lastErr, "failed to connect to database"), errs.ErrUpstreamUnavailable)
}

func open(ctx context.Context, poolCfg *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
