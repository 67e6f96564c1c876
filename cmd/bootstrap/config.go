package bootstrap

import (
	"go.uber.org/fx"

	"hotel-telegram-bot/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
