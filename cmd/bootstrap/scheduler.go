package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"hotel-telegram-bot/internal/infra/scheduler"
	"hotel-telegram-bot/internal/pkg/config"
	"hotel-telegram-bot/internal/pkg/ratelimit"
	"hotel-telegram-bot/internal/usecase/commands"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(scheduleOutboxRelay, scheduleLimiterSweep),
)

func NewScheduler(lc fx.Lifecycle) *scheduler.Scheduler {
	s := scheduler.New(nil)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
	return s
}

func scheduleOutboxRelay(s *scheduler.Scheduler, relay commands.OutboxRelay, cfg config.Config) error {
	_, err := s.ScheduleInterval(cfg.Escalation.RelayInterval, scheduler.RelayJob(relay, cfg.Escalation.RelayInterval))
	return err
}

func scheduleLimiterSweep(s *scheduler.Scheduler, limiter *ratelimit.KeyedLimiter, cfg config.Config) error {
	_, err := s.ScheduleInterval(cfg.RateLimit.IdleTTL, scheduler.SweepJob("chat rate limiter", limiter, cfg.RateLimit.IdleTTL))
	return err
}
