package commands

import (
	"context"
	"log/slog"

	"hotel-telegram-bot/internal/domain/escalation"
	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/usecase/shared"
)

type EscalateParams struct {
	Complaint  string
	TelegramID int64
	SessionID  string
}

type Acknowledgement struct {
	Message string
	// Recorded is false when the complaint could not be stored. The guest
	// is acknowledged either way.
	Recorded bool
}

type EscalationCommands interface {
	Escalate(ctx context.Context, params EscalateParams) (*Acknowledgement, error)
}

type escalationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEscalationUseCase(uow shared.UnitOfWork, clk clock.Clock) EscalationCommands {
	return &escalationUseCaseImpl{uow: uow, clock: clk}
}

// Escalate records the complaint and queues a support notification in the
// same transaction. Only an empty complaint is reported as an error.
func (uc *escalationUseCaseImpl) Escalate(ctx context.Context, params EscalateParams) (*Acknowledgement, error) {
	e, err := escalation.NewEscalation(uc.clock, params.TelegramID, params.SessionID, params.Complaint)
	if err != nil {
		return nil, err
	}

	slog.Warn("Escalation requested",
		"escalation_id", e.ID().String(),
		"telegram_id", params.TelegramID,
		"session_id", params.SessionID,
		"complaint", e.Complaint())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Escalations().Create(ctx, tx.DB(), e); derr != nil {
			return derr
		}

		payload, derr := e.EventPayload()
		if derr != nil {
			return derr
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), escalation.JobKind, escalation.TopicCreated, payload, e.CreatedAt())
	})
	if err != nil {
		slog.Error("Failed to record escalation",
			"escalation_id", e.ID().String(),
			"telegram_id", params.TelegramID,
			"error", err.Error())
		return &Acknowledgement{Message: escalation.Acknowledgement}, nil
	}

	return &Acknowledgement{Message: escalation.Acknowledgement, Recorded: true}, nil
}
