package readstore

import (
	"context"

	"hotel-telegram-bot/internal/infra"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
	"hotel-telegram-bot/internal/usecase/queries"
)

type RoomReadQueries interface {
	GetFirstAvailableRoomByType(ctx context.Context, db sqlc.DBTX, roomType string) (sqlc.Rooms, error)
	ListAvailableRoomsByType(ctx context.Context, db sqlc.DBTX, roomType string) ([]sqlc.Rooms, error)
	ListRoomTypeSummaries(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListRoomTypeSummariesRow, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

// FindAvailable returns the lowest-id available room of the type.
func (s *RoomReadStore) FindAvailable(ctx context.Context, roomType string) (*queries.RoomView, error) {
	row, err := s.queries.GetFirstAvailableRoomByType(ctx, s.db, roomType)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no available room", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find available room", err)
	}
	return toRoomView(row)
}

func (s *RoomReadStore) ListAvailable(ctx context.Context, roomType string) ([]*queries.RoomView, error) {
	rows, err := s.queries.ListAvailableRoomsByType(ctx, s.db, roomType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}

	result := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		view, err := toRoomView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (s *RoomReadStore) ListRoomTypes(ctx context.Context) ([]*queries.RoomTypeSummaryView, error) {
	rows, err := s.queries.ListRoomTypeSummaries(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	result := make([]*queries.RoomTypeSummaryView, 0, len(rows))
	for _, row := range rows {
		cents, err := pgconv.CentsFromNumeric(row.PricePerNight)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid room type price", err, infra.KindDBFailure)
		}
		result = append(result, &queries.RoomTypeSummaryView{
			RoomType:           row.RoomType,
			PricePerNightCents: cents,
			TotalRooms:         row.TotalRooms,
			AvailableRooms:     row.AvailableRooms,
		})
	}
	return result, nil
}

func toRoomView(row sqlc.Rooms) (*queries.RoomView, error) {
	cents, err := pgconv.CentsFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room price", err, infra.KindDBFailure)
	}
	return &queries.RoomView{
		ID:                 row.ID,
		RoomType:           row.RoomType,
		PricePerNightCents: cents,
		Availability:       row.Availability,
	}, nil
}
