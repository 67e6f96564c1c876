//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel-telegram-bot/internal/domain/room"
	"hotel-telegram-bot/internal/infra"
	"hotel-telegram-bot/internal/usecase/shared"
	sharedmock "hotel-telegram-bot/tests/mock/shared"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// txMocks wires a mocked unit of work whose Within runs the callback against
// the mocked repositories. Accessors may be called any number of times.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	rooms         *sharedmock.MockRoomRepository
	bookings      *sharedmock.MockBookingRepository
	sessions      *sharedmock.MockSessionRepository
	escalations   *sharedmock.MockEscalationRepository
	notifications *sharedmock.MockNotificationRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		rooms:         sharedmock.NewMockRoomRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		sessions:      sharedmock.NewMockSessionRepository(ctrl),
		escalations:   sharedmock.NewMockEscalationRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}

	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Sessions().Return(m.sessions).AnyTimes()
	m.tx.EXPECT().Escalations().Return(m.escalations).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	return m
}

func (m *txMocks) expectWithin() *gomock.Call {
	return m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func testRoom(t *testing.T, id int32, typ string, cents int64) *room.Room {
	t.Helper()
	rt, err := room.NewType(typ)
	require.NoError(t, err)
	price, err := room.NewMoney(cents)
	require.NoError(t, err)
	return room.ReconstructRoom(id, rt, price, room.AvailabilityAvailable)
}
