package components

import (
	"go.uber.org/fx"

	"hotel-telegram-bot/internal/handler"
	"hotel-telegram-bot/internal/handler/api"
	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/pkg/ratelimit"
	"hotel-telegram-bot/internal/usecase"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config, clk clock.Clock) *ratelimit.KeyedLimiter {
			return ratelimit.New(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, clk)
		},
		func(l *ratelimit.KeyedLimiter) api.ChatLimiter { return l },
		func(conversation usecase.ConversationUseCase, dedup api.UpdateDeduplicator, limiter api.ChatLimiter, cfg config.Config) *api.WebhookHandler {
			return api.NewWebhookHandler(conversation, dedup, limiter, cfg.Telegram.BotToken)
		},
	),
	fx.Invoke(handler.NewRouter),
)
