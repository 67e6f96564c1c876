package readstore

import (
	"context"

	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/infra"
	"hotel-telegram-bot/internal/infra/repository/converter"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

type SessionReadQueries interface {
	GetSession(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSessionParams) (sqlc.Sessions, error)
}

type SessionReadStore struct {
	queries SessionReadQueries
	db      sqlc.DBTX
}

func NewSessionReadStore(queries SessionReadQueries, db sqlc.DBTX) *SessionReadStore {
	return &SessionReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *SessionReadStore) FindByKey(ctx context.Context, key session.Key) (*session.Session, error) {
	row, err := s.queries.GetSession(ctx, s.db, sqlc.GetSessionParams{
		AppName:   key.AppName,
		UserID:    key.UserID,
		SessionID: key.SessionID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get session", err)
	}

	entity, err := converter.SessionToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid session row", err, infra.KindDBFailure)
	}
	return entity, nil
}
