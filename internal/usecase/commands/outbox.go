package commands

import (
	"context"
	"log/slog"

	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/usecase/shared"
)

// MaxDeliveryAttempts is how many publish attempts a job gets before it is
// left in the failed state.
const MaxDeliveryAttempts = 5

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type RelayResult struct {
	Claimed int
	Sent    int
	Failed  int
}

type OutboxRelay interface {
	RelayPending(ctx context.Context) (*RelayResult, error)
}

type outboxRelayImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	batchSize int32
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, batchSize int32) OutboxRelay {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &outboxRelayImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		batchSize: batchSize,
	}
}

// RelayPending publishes due jobs while holding their row locks, so two relays
// never deliver the same job. A failed publish requeues the job until it runs
// out of attempts.
func (r *outboxRelayImpl) RelayPending(ctx context.Context) (*RelayResult, error) {
	result := &RelayResult{}
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = RelayResult{}

		jobs, derr := tx.Notifications().ClaimQueued(ctx, tx.DB(), r.clock.Now(), r.batchSize)
		if derr != nil {
			return derr
		}
		result.Claimed = len(jobs)

		for _, job := range jobs {
			status := shared.JobStatusSent
			var lastError *string

			if perr := r.publisher.Publish(ctx, job.Topic, job.Payload); perr != nil {
				msg := perr.Error()
				lastError = &msg
				status = shared.JobStatusQueued
				if job.Attempts+1 >= MaxDeliveryAttempts {
					status = shared.JobStatusFailed
				}
				slog.Warn("Failed to publish notification job",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"error", msg)
			}

			if derr := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastError); derr != nil {
				return derr
			}
			if lastError == nil {
				result.Sent++
			} else {
				result.Failed++
			}
		}
		return nil
	})
	if err != nil {
		return nil, markStoreFailure(err)
	}

	if result.Claimed > 0 {
		slog.Info("Relayed notification jobs",
			"claimed", result.Claimed,
			"sent", result.Sent,
			"failed", result.Failed)
	}
	return result, nil
}
