package queries

import (
	"context"

	"github.com/jinzhu/copier"

	"hotel-telegram-bot/internal/domain/booking"
	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/pkg/errs"
)

var ErrInvalidRoomType = errs.ErrInvalidRoomType

type RoomReadStore interface {
	FindAvailable(ctx context.Context, roomType string) (*RoomView, error)
	ListAvailable(ctx context.Context, roomType string) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeSummaryView, error)
}

type CheckAvailabilityParams struct {
	RoomType string
	CheckIn  string
	CheckOut string
}

type Availability struct {
	RoomType            string `json:"room_type"`
	AvailableCount      int    `json:"available_count"`
	PricePerNightCents  int64  `json:"price_per_night_cents"`
	Nights              int    `json:"nights"`
	EstimatedTotalCents int64  `json:"estimated_total_cents"`
}

type RoomTypeOffer struct {
	RoomType           string `json:"room_type"`
	PricePerNightCents int64  `json:"price_per_night_cents"`
	AvailableRooms     int64  `json:"available_rooms"`
}

type RoomQueries interface {
	// CheckAvailability is a read-only snapshot. The booking transaction
	// re-checks under a row lock.
	CheckAvailability(ctx context.Context, params CheckAvailabilityParams) (*Availability, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeOffer, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) CheckAvailability(ctx context.Context, params CheckAvailabilityParams) (*Availability, error) {
	roomType, err := room.NewType(params.RoomType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoomType)
	}
	stay, err := booking.ParseStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	rooms, err := q.store.ListAvailable(ctx, roomType.String())
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, errs.Wrap(errs.ErrNoAvailability, roomType.String())
	}

	first := rooms[0]
	return &Availability{
		RoomType:            first.RoomType,
		AvailableCount:      len(rooms),
		PricePerNightCents:  first.PricePerNightCents,
		Nights:              stay.Nights(),
		EstimatedTotalCents: first.PricePerNightCents * int64(stay.Nights()),
	}, nil
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeOffer, error) {
	summaries, err := q.store.ListRoomTypes(ctx)
	if err != nil {
		return nil, err
	}

	offers := make([]*RoomTypeOffer, 0, len(summaries))
	if err := copier.Copy(&offers, &summaries); err != nil {
		return nil, errs.Wrap(err, "failed to map room type summaries")
	}
	return offers, nil
}
