package components

import (
	"go.uber.org/fx"

	"hotel-telegram-bot/internal/agent"
	"hotel-telegram-bot/internal/domain/booking"
	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/pkg/keylock"
	"hotel-telegram-bot/internal/usecase"
	"hotel-telegram-bot/internal/usecase/commands"
	"hotel-telegram-bot/internal/usecase/queries"
	"hotel-telegram-bot/internal/usecase/shared"
	"hotel-telegram-bot/internal/usecase/tools"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseToolsModule,
	usecaseConversationModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	keylock.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewSessionUseCase,
		commands.NewEscalationUseCase,
		func(uow shared.UnitOfWork, publisher commands.EventPublisher, clk clock.Clock, cfg config.Config) commands.OutboxRelay {
			return commands.NewOutboxRelay(uow, publisher, clk, cfg.Escalation.RelayBatchSize)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
	),
)

var usecaseToolsModule = fx.Module("usecase/tools",
	fx.Provide(
		NewToolRegistry,
	),
)

var usecaseConversationModule = fx.Module("usecase/conversation",
	fx.Provide(
		func(
			sessions commands.SessionCommands,
			ag agent.Agent,
			sender usecase.ReplySender,
			locks *keylock.Locker,
			clk clock.Clock,
			cfg config.Config,
		) usecase.ConversationUseCase {
			return usecase.NewConversationUseCase(sessions, ag, sender, locks, clk, cfg.Agent.AppName)
		},
	),
)

func NewToolRegistry(
	rooms queries.RoomQueries,
	bookings commands.BookingCommands,
	escalations commands.EscalationCommands,
) *tools.Registry {
	return tools.NewRegistry(
		tools.NewCheckAvailabilityTool(rooms),
		tools.NewBookRoomTool(bookings),
		tools.NewRoomTypesTool(rooms),
		tools.NewAttractionsTool(),
		tools.NewEscalateTool(escalations),
	)
}
