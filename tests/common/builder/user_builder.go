//go:build unit || e2e

package builder

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"hotel-telegram-bot/internal/domain/user"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
)

const DefaultTelegramID int64 = 100200300

var FixedTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type UserBuilder struct {
	ID         int32
	TelegramID int64
	FirstName  *string
	LastName   *string
	CreatedAt  time.Time
}

func NewUserBuilder() *UserBuilder {
	first, last := "Alice", "Smith"
	return &UserBuilder{
		ID:         1,
		TelegramID: DefaultTelegramID,
		FirstName:  &first,
		LastName:   &last,
		CreatedAt:  FixedTime,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithID(id int32) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithTelegramID(id int64) *UserBuilder {
	u.TelegramID = id
	return u
}

func (u *UserBuilder) WithoutLastName() *UserBuilder {
	u.LastName = nil
	return u
}

func (u *UserBuilder) WithoutNames() *UserBuilder {
	u.FirstName = nil
	u.LastName = nil
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	tid, err := user.NewTelegramID(u.TelegramID)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(u.ID, tid, u.FirstName, u.LastName, u.CreatedAt), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		FirstName:  textOrNull(u.FirstName),
		LastName:   textOrNull(u.LastName),
		CreatedAt:  pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
