package queries

import (
	"time"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID                 int32  `json:"id"`
	RoomType           string `json:"room_type"`
	PricePerNightCents int64  `json:"price_per_night_cents"`
	Availability       string `json:"availability"`
}

// RoomTypeSummaryView aggregates rooms sharing a type label
type RoomTypeSummaryView struct {
	RoomType           string `json:"room_type"`
	PricePerNightCents int64  `json:"price_per_night_cents"`
	TotalRooms         int64  `json:"total_rooms"`
	AvailableRooms     int64  `json:"available_rooms"`
}

// UserView represents read-optimized guest data
type UserView struct {
	ID         int32     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	FirstName  *string   `json:"first_name,omitempty"`
	LastName   *string   `json:"last_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
