//go:build unit

package converter_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/domain/booking"
	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/infra/repository/converter"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

func TestRoomToDomain(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		r, err := converter.RoomToDomain(sqlc.Rooms{
			ID:            3,
			RoomType:      "Deluxe",
			PricePerNight: pgtype.Numeric{Int: big.NewInt(25000), Exp: -2, Valid: true},
			Availability:  "available",
		})
		require.NoError(t, err)

		assert.Equal(t, int32(3), r.ID())
		assert.Equal(t, "Deluxe", r.Type().String())
		assert.Equal(t, int64(25000), r.PricePerNight().Cents())
		assert.True(t, r.IsAvailable())
	})

	t.Run("unknown availability", func(t *testing.T) {
		_, err := converter.RoomToDomain(sqlc.Rooms{
			ID:            3,
			RoomType:      "Deluxe",
			PricePerNight: pgconv.NumericFromCents(100),
			Availability:  "cleaning",
		})
		assert.ErrorIs(t, err, room.ErrInvalidAvailability)
	})

	t.Run("null price", func(t *testing.T) {
		_, err := converter.RoomToDomain(sqlc.Rooms{ID: 3, RoomType: "Deluxe", Availability: "available"})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestBookingToInfra(t *testing.T) {
	r, err := converter.RoomToDomain(sqlc.Rooms{
		ID:            1,
		RoomType:      "Standard",
		PricePerNight: pgconv.NumericFromCents(15000),
		Availability:  "available",
	})
	require.NoError(t, err)
	stay, err := booking.ParseStayPeriod("2025-07-01", "2025-07-04")
	require.NoError(t, err)
	services := &booking.Services{
		Clock:           clock.NewMockClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		PriceCalculator: booking.NewNightlyPriceCalculator(),
	}
	b, err := booking.NewBooking(services, r, 9, stay)
	require.NoError(t, err)

	params := converter.BookingToInfra(b)

	assert.Equal(t, int32(9), params.UserID)
	assert.Equal(t, int32(1), params.RoomID)
	assert.Equal(t, "confirmed", params.BookingStatus)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), params.CheckInDate.Time)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), params.CheckOutDate.Time)
	total, err := pgconv.CentsFromNumeric(params.TotalPrice)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), total)
}
