package repository

import (
	"context"

	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/infra"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
)

type SessionWriteQueries interface {
	CreateSessionIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSessionIfAbsentParams) (int64, error)
	UpdateSessionState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSessionStateParams) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
}

func NewSessionRepository(queries SessionWriteQueries) *SessionRepository {
	return &SessionRepository{
		queries: queries,
	}
}

func (r *SessionRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, s *session.Session) (bool, error) {
	state, err := s.State().Encode()
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode session state", err, infra.KindDBFailure)
	}

	key := s.Key()
	n, err := r.queries.CreateSessionIfAbsent(ctx, tx, sqlc.CreateSessionIfAbsentParams{
		AppName:   key.AppName,
		UserID:    key.UserID,
		SessionID: key.SessionID,
		State:     state,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create session", err)
	}
	return n == 1, nil
}

func (r *SessionRepository) SaveState(ctx context.Context, tx sqlc.DBTX, s *session.Session) error {
	state, err := s.State().Encode()
	if err != nil {
		return infra.WrapRepoErr("failed to encode session state", err, infra.KindDBFailure)
	}

	key := s.Key()
	n, err := r.queries.UpdateSessionState(ctx, tx, sqlc.UpdateSessionStateParams{
		AppName:   key.AppName,
		UserID:    key.UserID,
		SessionID: key.SessionID,
		State:     state,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save session state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}
