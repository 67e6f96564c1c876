package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/commands"
)

// Scheduler runs periodic background jobs.
type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
}

// ScheduleInterval registers job every interval, rounded down to whole
// seconds with a one second floor.
func (s *Scheduler) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, errs.Mark(errs.New("interval must be positive"), errs.ErrConfiguration)
	}
	seconds := max(int(interval.Seconds()), 1)
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), job)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs or for ctx, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Sweeper drops state that has been idle for at least the given duration.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// SweepJob evicts idle entries once per tick.
func SweepJob(name string, s Sweeper, idle time.Duration) func() {
	return func() {
		if removed := s.Sweep(idle); removed > 0 {
			slog.Debug("Idle entries evicted", "target", name, "removed", removed)
		}
	}
}

// RelayJob drains the escalation outbox once per tick.
func RelayJob(relay commands.OutboxRelay, timeout time.Duration) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := relay.RelayPending(ctx)
		if err != nil {
			slog.Error("Escalation relay failed", "error", err.Error())
			return
		}
		if res.Claimed > 0 {
			slog.Info("Escalation relay finished", "claimed", res.Claimed, "sent", res.Sent, "failed", res.Failed)
		}
	}
}
