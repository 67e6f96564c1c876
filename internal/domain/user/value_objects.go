package user

import (
	"errors"
	"strconv"
)

var ErrInvalidTelegramID = errors.New("telegram id must be non-zero")

// TelegramID is the external chat identity of a guest. Group chats have
// negative ids, so only zero is rejected.
type TelegramID struct {
	value int64
}

func NewTelegramID(v int64) (TelegramID, error) {
	if v == 0 {
		return TelegramID{}, ErrInvalidTelegramID
	}
	return TelegramID{value: v}, nil
}

func (t TelegramID) Int64() int64 {
	return t.value
}

func (t TelegramID) String() string {
	return strconv.FormatInt(t.value, 10)
}
