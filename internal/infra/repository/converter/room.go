package converter

import (
	"fmt"

	"hotel-telegram-bot/internal/domain/room"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

func RoomToDomain(row sqlc.Rooms) (*room.Room, error) {
	roomType, err := room.NewType(row.RoomType)
	if err != nil {
		return nil, fmt.Errorf("room %d: %w", row.ID, err)
	}

	cents, err := pgconv.CentsFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, fmt.Errorf("room %d price: %w", row.ID, err)
	}
	price, err := room.NewMoney(cents)
	if err != nil {
		return nil, fmt.Errorf("room %d price: %w", row.ID, err)
	}

	availability, err := room.ParseAvailability(row.Availability)
	if err != nil {
		return nil, fmt.Errorf("room %d: %w", row.ID, err)
	}

	return room.ReconstructRoom(row.ID, roomType, price, availability), nil
}
