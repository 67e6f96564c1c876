//go:build unit

package user_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/domain/user"
	"hotel-telegram-bot/tests/common/builder"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.TelegramID{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("builder produces the reconstructed entity", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		tid, _ := user.NewTelegramID(builder.DefaultTelegramID)
		first, last := "Alice", "Smith"
		expected := user.ReconstructUser(1, tid, &first, &last, builder.FixedTime)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("display name", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.UserBuilder)
			want   string
		}{
			{name: "first and last", mutate: func(b *builder.UserBuilder) {}, want: "Alice Smith"},
			{name: "first only", mutate: func(b *builder.UserBuilder) { b.WithoutLastName() }, want: "Alice"},
			{name: "no names", mutate: func(b *builder.UserBuilder) { b.WithoutNames() }, want: "Guest"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				u, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()
				require.NoError(t, err)
				assert.Equal(t, c.want, u.DisplayName())
			})
		}
	})

	t.Run("zero telegram id is rejected", func(t *testing.T) {
		_, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.WithTelegramID(0) }).BuildDomain()
		assert.ErrorIs(t, err, user.ErrInvalidTelegramID)
	})

	t.Run("group chat ids are negative and allowed", func(t *testing.T) {
		tid, err := user.NewTelegramID(-100123)
		require.NoError(t, err)
		assert.Equal(t, "-100123", tid.String())
	})
}
