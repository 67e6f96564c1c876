package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"hotel-telegram-bot/internal/infra/queue"
	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/usecase/commands"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to logging escalations when no broker is
// configured or reachable.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, escalations will be logged")
		return queue.LogPublisher{}
	}

	publisher, err := queue.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		slog.Warn("AMQP broker unavailable, escalations will be logged", "error", err.Error())
		return queue.LogPublisher{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	slog.Info("Escalation publisher connected", "queue", cfg.AMQP.Queue)
	return publisher
}
