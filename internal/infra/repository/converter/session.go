package converter

import (
	"hotel-telegram-bot/internal/domain/session"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

func SessionToDomain(row sqlc.Sessions) (*session.Session, error) {
	state, err := session.DecodeState(row.State)
	if err != nil {
		return nil, err
	}
	key := session.Key{AppName: row.AppName, UserID: row.UserID, SessionID: row.SessionID}
	return session.ReconstructSession(
		key,
		state,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
