package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-telegram-bot/internal/domain/booking"
	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/infra"
	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/shared"
)

type BookRoomParams struct {
	RoomType   string
	CheckIn    string
	CheckOut   string
	TelegramID int64
}

type BookingResult struct {
	BookingID       int32
	RoomID          int32
	RoomType        string
	CheckIn         time.Time
	CheckOut        time.Time
	Nights          int
	TotalPriceCents int64
}

type BookingCommands interface {
	Book(ctx context.Context, params BookRoomParams) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, calc booking.PriceCalculator) BookingCommands {
	return &bookingUseCaseImpl{
		uow: uow,
		services: &booking.Services{
			Clock:           clk,
			PriceCalculator: calc,
		},
	}
}

// Book reserves the lowest-id available room of the requested type. The
// availability check, the room update and the booking insert commit together
// or not at all.
func (uc *bookingUseCaseImpl) Book(ctx context.Context, params BookRoomParams) (*BookingResult, error) {
	roomType, err := room.NewType(params.RoomType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRoomType)
	}
	stay, err := booking.ParseStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	var (
		result *BookingResult
		total  room.Money
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Rooms().LockAvailable(ctx, tx.DB(), roomType)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Wrap(errs.ErrNoAvailability, roomType.String())
			}
			return derr
		}

		guest, derr := tx.Reads().UserByTelegramID(ctx, params.TelegramID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrUnknownUser
			}
			return derr
		}

		b, derr := booking.NewBooking(uc.services, r, guest.ID, stay)
		if derr != nil {
			switch {
			case errs.Is(derr, booking.ErrRoomNotAvailable):
				return errs.Wrap(errs.ErrNoAvailability, roomType.String())
			case errs.Is(derr, booking.ErrInvalidUser):
				return errs.ErrUnknownUser
			}
			return derr
		}

		occupied, derr := tx.Rooms().MarkOccupied(ctx, tx.DB(), r.ID())
		if derr != nil {
			return derr
		}
		if !occupied {
			return errs.Wrap(errs.ErrNoAvailability, roomType.String())
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}

		total = b.TotalPrice()
		result = &BookingResult{
			BookingID:       id,
			RoomID:          r.ID(),
			RoomType:        r.Type().String(),
			CheckIn:         stay.CheckIn(),
			CheckOut:        stay.CheckOut(),
			Nights:          stay.Nights(),
			TotalPriceCents: total.Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, markPersistence(err)
	}

	slog.Info("Booking confirmed",
		"booking_id", result.BookingID,
		"room_id", result.RoomID,
		"telegram_id", params.TelegramID,
		"nights", result.Nights,
		"total_price", total.String())

	return result, nil
}

// markPersistence leaves business outcomes and already classified storage
// failures alone and marks everything else as a persistence failure.
func markPersistence(err error) error {
	switch {
	case errs.Is(err, errs.ErrNoAvailability),
		errs.Is(err, errs.ErrUnknownUser),
		errs.Is(err, errs.ErrInvalidDateRange),
		errs.Is(err, errs.ErrInvalidRoomType),
		errs.Is(err, errs.ErrUpstreamUnavailable),
		errs.Is(err, errs.ErrPersistence):
		return err
	}
	return errs.Mark(err, errs.ErrPersistence)
}
