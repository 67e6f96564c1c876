package user

import (
	"strings"
	"time"
)

// User is a registered guest. Users are created out-of-band; the bot only
// looks them up.
type User struct {
	id         int32
	telegramID TelegramID
	firstName  *string
	lastName   *string
	createdAt  time.Time
}

func ReconstructUser(id int32, telegramID TelegramID, firstName, lastName *string, createdAt time.Time) *User {
	return &User{
		id:         id,
		telegramID: telegramID,
		firstName:  firstName,
		lastName:   lastName,
		createdAt:  createdAt,
	}
}

// DisplayName joins the known name parts, falling back to "Guest".
func (u *User) DisplayName() string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{u.firstName, u.lastName} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	if len(parts) == 0 {
		return "Guest"
	}
	return strings.Join(parts, " ")
}

func (u *User) ID() int32              { return u.id }
func (u *User) TelegramID() TelegramID { return u.telegramID }
func (u *User) FirstName() *string     { return u.firstName }
func (u *User) LastName() *string      { return u.lastName }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
