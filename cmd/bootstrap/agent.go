package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"hotel-telegram-bot/internal/agent"
	"hotel-telegram-bot/internal/agent/gemini"
	"hotel-telegram-bot/internal/agent/rules"
	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/usecase/tools"
)

var AgentModule = fx.Module("agent",
	fx.Provide(
		NewAgent,
	),
)

func NewAgent(lc fx.Lifecycle, cfg config.Config, registry *tools.Registry) (agent.Agent, error) {
	if cfg.Agent.Provider != config.AgentProviderGemini {
		return rules.New(registry), nil
	}

	client, err := gemini.NewClient(context.Background(), cfg.Agent.GeminiAPIKey)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return gemini.New(client, cfg.Agent.GeminiModel, registry), nil
}
