package booking

import (
	"hotel-telegram-bot/internal/domain/room"
)

type PriceCalculator interface {
	TotalPrice(r *room.Room, stay StayPeriod) room.Money
}

// NightlyPriceCalculator charges the room's nightly rate for every night.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) TotalPrice(r *room.Room, stay StayPeriod) room.Money {
	return r.PricePerNight().Times(stay.Nights())
}
