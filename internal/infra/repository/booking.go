package repository

import (
	"context"

	"hotel-telegram-bot/internal/domain/booking"
	"hotel-telegram-bot/internal/infra"
	"hotel-telegram-bot/internal/infra/repository/converter"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int32, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int32, error) {
	params := converter.BookingToInfra(b)

	id, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}
