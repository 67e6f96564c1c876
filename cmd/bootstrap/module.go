package bootstrap

import (
	"go.uber.org/fx"

	"hotel-telegram-bot/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	TelegramModule,
	RedisModule,
	AMQPModule,
	AgentModule,
	SchedulerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
