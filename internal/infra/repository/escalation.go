package repository

import (
	"context"

	"hotel-telegram-bot/internal/domain/escalation"
	"hotel-telegram-bot/internal/infra"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

type EscalationWriteQueries interface {
	CreateEscalation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEscalationParams) error
}

type EscalationRepository struct {
	queries EscalationWriteQueries
}

func NewEscalationRepository(queries EscalationWriteQueries) *EscalationRepository {
	return &EscalationRepository{
		queries: queries,
	}
}

func (r *EscalationRepository) Create(ctx context.Context, tx sqlc.DBTX, e *escalation.Escalation) error {
	err := r.queries.CreateEscalation(ctx, tx, sqlc.CreateEscalationParams{
		ID:         e.ID(),
		TelegramID: e.TelegramID(),
		SessionID:  e.SessionID(),
		Complaint:  e.Complaint(),
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create escalation", err)
	}
	return nil
}
