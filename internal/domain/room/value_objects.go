package room

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRoomType       = errors.New("room type cannot be empty")
	ErrRoomTypeTooLong     = errors.New("room type is too long (max 50 characters)")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrInvalidAvailability = errors.New("invalid room availability")
)

const MaxRoomTypeLength = 50

// Type is a room category label such as "Standard" or "Suite". Lookups compare
// labels case-insensitively.
type Type struct {
	value string
}

func NewType(value string) (Type, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Type{}, ErrEmptyRoomType
	}
	if len(value) > MaxRoomTypeLength {
		return Type{}, ErrRoomTypeTooLong
	}
	return Type{value: value}, nil
}

func (t Type) String() string {
	return t.value
}

func (t Type) Matches(other string) bool {
	return strings.EqualFold(t.value, strings.TrimSpace(other))
}

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityOccupied  Availability = "occupied"
)

func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	if !a.IsValid() {
		return "", ErrInvalidAvailability
	}
	return a, nil
}

func (a Availability) String() string {
	return string(a)
}

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityOccupied:
		return true
	default:
		return false
	}
}

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Float returns the amount in currency units, for tool payloads.
func (m Money) Float() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
