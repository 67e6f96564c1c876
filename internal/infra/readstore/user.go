package readstore

import (
	"context"

	"hotel-telegram-bot/internal/infra"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
	"hotel-telegram-bot/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByTelegramID(ctx context.Context, db sqlc.DBTX, telegramID int64) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByTelegramID(ctx context.Context, telegramID int64) (*queries.UserView, error) {
	row, err := r.queries.FindUserByTelegramID(ctx, r.db, telegramID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by telegram id", err)
	}

	return toUserView(row), nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:         row.ID,
		TelegramID: row.TelegramID,
		FirstName:  pgconv.StringPtrFromPgtype(row.FirstName),
		LastName:   pgconv.StringPtrFromPgtype(row.LastName),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
