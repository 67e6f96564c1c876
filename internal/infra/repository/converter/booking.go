package converter

import (
	"hotel-telegram-bot/internal/domain/booking"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	stay := b.Stay()
	return sqlc.CreateBookingParams{
		UserID:        b.UserID(),
		RoomID:        b.RoomID(),
		CheckInDate:   pgconv.DateToPgtype(stay.CheckIn()),
		CheckOutDate:  pgconv.DateToPgtype(stay.CheckOut()),
		TotalPrice:    pgconv.NumericFromCents(b.TotalPrice().Cents()),
		BookingStatus: b.Status().String(),
	}
}
