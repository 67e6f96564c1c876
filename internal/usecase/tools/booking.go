package tools

import (
	"context"
	"fmt"

	"hotel-telegram-bot/internal/domain/booking"
	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/commands"
	"hotel-telegram-bot/internal/usecase/queries"
)

const (
	NameCheckAvailability = "check_room_availability"
	NameBookRoom          = "book_room"

	msgNoRoomsForBooking = "Sorry, no rooms of that type are available."
	msgUserNotFound      = "User not found."
	msgInvalidDateRange  = "Check-out date must be after check-in date. Dates use the YYYY-MM-DD format."
	msgInvalidRoomType   = "Please tell me which room type you would like."
)

type stayArgs struct {
	RoomType string `mapstructure:"room_type" validate:"required,max=50"`
	CheckIn  string `mapstructure:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOut string `mapstructure:"check_out_date" validate:"required,datetime=2006-01-02"`
}

var stayParameters = []Parameter{
	{Name: "room_type", Type: "string", Description: "Room type label, for example Standard, Deluxe or Suite.", Required: true},
	{Name: "check_in_date", Type: "string", Description: "Check-in date in YYYY-MM-DD format.", Required: true},
	{Name: "check_out_date", Type: "string", Description: "Check-out date in YYYY-MM-DD format.", Required: true},
}

type CheckAvailabilityTool struct {
	rooms queries.RoomQueries
}

func NewCheckAvailabilityTool(rooms queries.RoomQueries) *CheckAvailabilityTool {
	return &CheckAvailabilityTool{rooms: rooms}
}

func (t *CheckAvailabilityTool) Name() string { return NameCheckAvailability }

func (t *CheckAvailabilityTool) Description() string {
	return "Checks for available rooms of a specific type for given dates."
}

func (t *CheckAvailabilityTool) Parameters() []Parameter { return stayParameters }

func (t *CheckAvailabilityTool) Invoke(ctx context.Context, inv Invocation) (Result, error) {
	var args stayArgs
	if msg, ok := decodeArgs(inv.Args, &args); !ok {
		return errorResult(msg), nil
	}

	avail, err := t.rooms.CheckAvailability(ctx, queries.CheckAvailabilityParams{
		RoomType: args.RoomType,
		CheckIn:  args.CheckIn,
		CheckOut: args.CheckOut,
	})
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrNoAvailability):
		return errorResult(fmt.Sprintf("No available '%s' rooms for those dates.", args.RoomType)), nil
	case errs.Is(err, errs.ErrInvalidDateRange):
		return errorResult(msgInvalidDateRange), nil
	case errs.Is(err, errs.ErrInvalidRoomType):
		return errorResult(msgInvalidRoomType), nil
	default:
		return nil, err
	}

	price := moneyFloat(avail.PricePerNightCents)
	return Result{
		"status":          StatusSuccess,
		"available_count": avail.AvailableCount,
		"price":           price,
		"nights":          avail.Nights,
		"estimated_total": moneyFloat(avail.EstimatedTotalCents),
	}, nil
}

type BookRoomTool struct {
	bookings commands.BookingCommands
}

func NewBookRoomTool(bookings commands.BookingCommands) *BookRoomTool {
	return &BookRoomTool{bookings: bookings}
}

func (t *BookRoomTool) Name() string { return NameBookRoom }

func (t *BookRoomTool) Description() string {
	return "Books an available room for the user and updates its status to 'occupied'."
}

func (t *BookRoomTool) Parameters() []Parameter { return stayParameters }

func (t *BookRoomTool) Invoke(ctx context.Context, inv Invocation) (Result, error) {
	var args stayArgs
	if msg, ok := decodeArgs(inv.Args, &args); !ok {
		return errorResult(msg), nil
	}

	res, err := t.bookings.Book(ctx, commands.BookRoomParams{
		RoomType:   args.RoomType,
		CheckIn:    args.CheckIn,
		CheckOut:   args.CheckOut,
		TelegramID: inv.Caller.TelegramID,
	})
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrNoAvailability):
		return errorResult(msgNoRoomsForBooking), nil
	case errs.Is(err, errs.ErrUnknownUser):
		return errorResult(msgUserNotFound), nil
	case errs.Is(err, errs.ErrInvalidDateRange):
		return errorResult(msgInvalidDateRange), nil
	case errs.Is(err, errs.ErrInvalidRoomType):
		return errorResult(msgInvalidRoomType), nil
	default:
		return nil, err
	}

	return Result{
		"status":         StatusSuccess,
		"message":        fmt.Sprintf("Successfully booked a %s room.", res.RoomType),
		"booking_id":     res.BookingID,
		"total_price":    moneyFloat(res.TotalPriceCents),
		"check_in_date":  res.CheckIn.Format(booking.DateLayout),
		"check_out_date": res.CheckOut.Format(booking.DateLayout),
		"nights":         res.Nights,
	}, nil
}

func moneyFloat(cents int64) float64 {
	m, err := room.NewMoney(cents)
	if err != nil {
		return 0
	}
	return m.Float()
}
