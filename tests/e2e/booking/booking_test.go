//go:build e2e

package booking_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/commands"
	"hotel-telegram-bot/tests/common/builder"
	"hotel-telegram-bot/tests/common/dbtest"
	"hotel-telegram-bot/tests/e2e"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) book(roomType, checkIn, checkOut string, telegramID int64) (*commands.BookingResult, error) {
	return s.Commands.Bookings.Book(context.Background(), commands.BookRoomParams{
		RoomType:   roomType,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TelegramID: telegramID,
	})
}

func (s *BookingSuite) TestBook() {
	s.Run("success: charges nights times nightly price and occupies the lowest-id room", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, builder.DefaultTelegramID, "Alice")

		res, err := s.book("Standard", "2025-12-01", "2025-12-04", builder.DefaultTelegramID)

		require.NoError(t, err)
		s.Equal(int32(1), res.RoomID)
		s.Equal(3, res.Nights)
		s.Equal(int64(45000), res.TotalPriceCents)
		s.Equal("occupied", dbtest.RoomAvailability(t, s.DB, 1))
		s.Equal("available", dbtest.RoomAvailability(t, s.DB, 2))
		s.Equal(1, dbtest.CountRows(t, s.DB, "bookings"))

		var total string
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT total_price::text FROM bookings WHERE id = $1", res.BookingID).Scan(&total))
		s.Equal("450.00", total)
	})

	s.Run("success: room type match ignores case", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, builder.DefaultTelegramID, "Alice")

		res, err := s.book("deluxe", "2025-12-01", "2025-12-02", builder.DefaultTelegramID)

		require.NoError(t, err)
		s.Equal(int64(25000), res.TotalPriceCents)
	})

	s.Run("error: no available room of the type", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, builder.DefaultTelegramID, "Alice")

		_, err := s.book("Suite", "2025-12-01", "2025-12-03", builder.DefaultTelegramID)

		s.True(errs.Is(err, errs.ErrNoAvailability))
		s.Equal(0, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("error: unknown user leaves the room available", func() {
		t := s.T()

		_, err := s.book("Deluxe", "2025-12-01", "2025-12-03", 999)

		s.True(errs.Is(err, errs.ErrUnknownUser))
		s.Equal("available", dbtest.RoomAvailability(t, s.DB, 3))
		s.Equal(0, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("error: check-out not after check-in", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, builder.DefaultTelegramID, "Alice")

		_, err := s.book("Deluxe", "2025-12-03", "2025-12-03", builder.DefaultTelegramID)

		s.True(errs.Is(err, errs.ErrInvalidDateRange))
		s.Equal("available", dbtest.RoomAvailability(t, s.DB, 3))
	})

	s.Run("error: failed booking insert rolls back the occupancy change", func() {
		t := s.T()
		ctx := context.Background()
		dbtest.CreateTestUser(t, s.DB, builder.DefaultTelegramID, "Alice")

		_, err := s.DB.Exec(ctx, `
			CREATE OR REPLACE FUNCTION reject_booking() RETURNS trigger AS $$
			BEGIN
			    RAISE EXCEPTION 'bookings are frozen';
			END $$ LANGUAGE plpgsql;
			CREATE TRIGGER reject_booking BEFORE INSERT ON bookings
			    FOR EACH ROW EXECUTE FUNCTION reject_booking();`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = s.DB.Exec(context.Background(), `
				DROP TRIGGER IF EXISTS reject_booking ON bookings;
				DROP FUNCTION IF EXISTS reject_booking();`)
		})

		_, err = s.book("Deluxe", "2025-12-01", "2025-12-03", builder.DefaultTelegramID)

		s.True(errs.Is(err, errs.ErrPersistence))
		s.Equal("available", dbtest.RoomAvailability(t, s.DB, 3))
		s.Equal(0, dbtest.CountRows(t, s.DB, "bookings"))
	})
}

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("exactly one of many concurrent requests gets the last room", func() {
		t := s.T()
		const guests = 8
		for i := range guests {
			dbtest.CreateTestUser(t, s.DB, int64(5000+i), "Guest")
		}

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			noRoom    int
			others    []error
		)
		for i := range guests {
			wg.Add(1)
			go func(telegramID int64) {
				defer wg.Done()
				_, err := s.book("Deluxe", "2025-12-10", "2025-12-12", telegramID)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errs.Is(err, errs.ErrNoAvailability):
					noRoom++
				default:
					others = append(others, err)
				}
			}(int64(5000 + i))
		}
		wg.Wait()

		s.Empty(others)
		s.Equal(1, successes)
		s.Equal(guests-1, noRoom)
		s.Equal(1, dbtest.CountRows(t, s.DB, "bookings"))
		s.Equal("occupied", dbtest.RoomAvailability(t, s.DB, 3))
	})

	s.Run("two rooms of a type go to two different requests", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, 7001, "Bob")
		dbtest.CreateTestUser(t, s.DB, 7002, "Carol")

		var wg sync.WaitGroup
		results := make([]*commands.BookingResult, 2)
		errsOut := make([]error, 2)
		for i, id := range []int64{7001, 7002} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], errsOut[i] = s.book("Standard", "2025-12-10", "2025-12-11", id)
			}()
		}
		wg.Wait()

		require.NoError(t, errsOut[0])
		require.NoError(t, errsOut[1])
		s.NotEqual(results[0].RoomID, results[1].RoomID)
		s.Equal("occupied", dbtest.RoomAvailability(t, s.DB, 1))
		s.Equal("occupied", dbtest.RoomAvailability(t, s.DB, 2))
	})
}
