package booking

import (
	"errors"
	"time"

	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/pkg/clock"
)

var (
	ErrRoomNotAvailable = errors.New("room is not available")
	ErrInvalidUser      = errors.New("booking requires a persisted user")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// Booking is immutable once created. The id is assigned by the ledger on insert.
type Booking struct {
	id         int32
	userID     int32
	roomID     int32
	roomType   room.Type
	stay       StayPeriod
	totalPrice room.Money
	status     Status
	createdAt  time.Time
}

func NewBooking(services *Services, r *room.Room, userID int32, stay StayPeriod) (*Booking, error) {
	if !r.IsAvailable() {
		return nil, ErrRoomNotAvailable
	}
	if userID <= 0 {
		return nil, ErrInvalidUser
	}

	return &Booking{
		userID:     userID,
		roomID:     r.ID(),
		roomType:   r.Type(),
		stay:       stay,
		totalPrice: services.PriceCalculator.TotalPrice(r, stay),
		status:     StatusConfirmed,
		createdAt:  services.Clock.Now(),
	}, nil
}

func ReconstructBooking(
	id, userID, roomID int32,
	roomType room.Type,
	stay StayPeriod,
	totalPrice room.Money,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		roomID:     roomID,
		roomType:   roomType,
		stay:       stay,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
	}
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() int32              { return b.id }
func (b *Booking) UserID() int32          { return b.userID }
func (b *Booking) RoomID() int32          { return b.roomID }
func (b *Booking) RoomType() room.Type    { return b.roomType }
func (b *Booking) Stay() StayPeriod       { return b.stay }
func (b *Booking) TotalPrice() room.Money { return b.totalPrice }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
