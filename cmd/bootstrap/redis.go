package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"hotel-telegram-bot/internal/handler/api"
	"hotel-telegram-bot/internal/infra/dedup"
	"hotel-telegram-bot/internal/pkg/config"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewDeduplicator,
	),
)

// NewDeduplicator degrades to a no-op when Redis is unset or unreachable.
func NewDeduplicator(lc fx.Lifecycle, cfg config.Config) api.UpdateDeduplicator {
	if cfg.Redis.URL == "" {
		slog.Info("REDIS_URL not set, update de-duplication disabled")
		return dedup.NopDeduplicator{}
	}

	client, err := dedup.Connect(context.Background(), cfg.Redis.URL)
	if err != nil {
		slog.Warn("Redis unavailable, update de-duplication disabled", "error", err.Error())
		return dedup.NopDeduplicator{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	slog.Info("Update de-duplication enabled", "ttl", cfg.Redis.DedupTTL)
	return dedup.NewRedisDeduplicator(client, cfg.Redis.DedupTTL)
}
