package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"hotel-telegram-bot/internal/infra/telegram"
	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/usecase"
)

var TelegramModule = fx.Module("telegram",
	fx.Provide(
		NewTelegramClient,
		fx.Annotate(
			func(c *telegram.Client) *telegram.Client { return c },
			fx.As(new(usecase.ReplySender)),
		),
	),
	fx.Invoke(registerWebhook),
)

func NewTelegramClient(cfg config.Config) *telegram.Client {
	return telegram.NewClient(cfg.Telegram.BotToken)
}

// registerWebhook points Telegram at this server once it is listening.
func registerWebhook(lc fx.Lifecycle, client *telegram.Client, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go telegram.RegisterWebhook(ctx, client, cfg.WebhookURL(), cfg.Telegram.WebhookDelay)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
