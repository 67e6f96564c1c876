package booking

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted from chat users and tools.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStayRange = errors.New("check-out date must be after check-in date")
)

// StayPeriod is a half-open range of nights [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ParseStayPeriod parses two YYYY-MM-DD dates.
func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayPeriod{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return StayPeriod{}, err
	}
	return NewStayPeriod(in, out)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Nights counts calendar days between check-in and check-out. Both ends are
// UTC midnights, so the Unix difference is a whole number of days for any
// range time.Time can hold.
func (p StayPeriod) Nights() int {
	return int((p.checkOut.Unix() - p.checkIn.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
