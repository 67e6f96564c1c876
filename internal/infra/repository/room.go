package repository

import (
	"context"

	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/infra"
	"hotel-telegram-bot/internal/infra/repository/converter"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

type RoomWriteQueries interface {
	LockFirstAvailableRoomByType(ctx context.Context, db sqlc.DBTX, roomType string) (sqlc.Rooms, error)
	MarkRoomOccupied(ctx context.Context, db sqlc.DBTX, id int32) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{
		queries: queries,
	}
}

func (r *RoomRepository) LockAvailable(ctx context.Context, tx sqlc.DBTX, roomType room.Type) (*room.Room, error) {
	row, err := r.queries.LockFirstAvailableRoomByType(ctx, tx, roomType.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no available room to lock", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock available room", err)
	}

	entity, err := converter.RoomToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room row", err, infra.KindDBFailure)
	}
	return entity, nil
}

func (r *RoomRepository) MarkOccupied(ctx context.Context, tx sqlc.DBTX, roomID int32) (bool, error) {
	n, err := r.queries.MarkRoomOccupied(ctx, tx, roomID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark room occupied", err)
	}
	return n == 1, nil
}
