package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"hotel-telegram-bot/internal/handler/middleware"
	"hotel-telegram-bot/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
