//go:build unit

package infra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"hotel-telegram-bot/internal/infra"
	"hotel-telegram-bot/internal/pkg/errs"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		wantMark error
	}{
		{
			name:     "explicit not found stays unmarked",
			err:      pgx.ErrNoRows,
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505"},
			wantKind: infra.KindDuplicateKey,
			wantMark: errs.ErrPersistence,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
			wantMark: errs.ErrPersistence,
		},
		{
			name:     "check violation",
			err:      &pgconn.PgError{Code: "23514"},
			wantKind: infra.KindDBFailure,
			wantMark: errs.ErrPersistence,
		},
		{
			name:     "connection class",
			err:      &pgconn.PgError{Code: "08006"},
			wantKind: infra.KindUnavailable,
			wantMark: errs.ErrUpstreamUnavailable,
		},
		{
			name:     "deadline",
			err:      context.DeadlineExceeded,
			wantKind: infra.KindUnavailable,
			wantMark: errs.ErrUpstreamUnavailable,
		},
		{
			name:     "anything else",
			err:      errors.New("boom"),
			wantKind: infra.KindDBFailure,
			wantMark: errs.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.err)
			if tt.wantMark != nil {
				assert.True(t, errs.Is(err, tt.wantMark))
			} else {
				assert.False(t, errs.Is(err, errs.ErrPersistence))
			}
		})
	}
}
