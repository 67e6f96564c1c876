//go:build unit

package readstore

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/infra"
	sqlc "hotel-telegram-bot/internal/infra/sqlc/generated"
	"hotel-telegram-bot/internal/pkg/pgconv"
)

type MockRoomReadQueries struct {
	mock.Mock
}

func (m *MockRoomReadQueries) GetFirstAvailableRoomByType(ctx context.Context, db sqlc.DBTX, roomType string) (sqlc.Rooms, error) {
	args := m.Called(ctx, db, roomType)
	return args.Get(0).(sqlc.Rooms), args.Error(1)
}

func (m *MockRoomReadQueries) ListAvailableRoomsByType(ctx context.Context, db sqlc.DBTX, roomType string) ([]sqlc.Rooms, error) {
	args := m.Called(ctx, db, roomType)
	return args.Get(0).([]sqlc.Rooms), args.Error(1)
}

func (m *MockRoomReadQueries) ListRoomTypeSummaries(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListRoomTypeSummariesRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ListRoomTypeSummariesRow), args.Error(1)
}

func standardRoom(id int32) sqlc.Rooms {
	return sqlc.Rooms{ID: id, RoomType: "Standard", PricePerNight: pgconv.NumericFromCents(15000), Availability: "available"}
}

func TestRoomReadStore_FindAvailable(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		q := new(MockRoomReadQueries)
		q.On("GetFirstAvailableRoomByType", mock.Anything, mock.Anything, "Standard").Return(standardRoom(1), nil)

		view, err := NewRoomReadStore(q, nil).FindAvailable(context.Background(), "Standard")

		require.NoError(t, err)
		assert.Equal(t, int32(1), view.ID)
		assert.Equal(t, int64(15000), view.PricePerNightCents)
	})

	t.Run("none", func(t *testing.T) {
		q := new(MockRoomReadQueries)
		q.On("GetFirstAvailableRoomByType", mock.Anything, mock.Anything, "Suite").Return(sqlc.Rooms{}, pgx.ErrNoRows)

		view, err := NewRoomReadStore(q, nil).FindAvailable(context.Background(), "Suite")

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRoomReadStore_ListAvailable(t *testing.T) {
	q := new(MockRoomReadQueries)
	q.On("ListAvailableRoomsByType", mock.Anything, mock.Anything, "standard").Return([]sqlc.Rooms{standardRoom(1), standardRoom(2)}, nil)

	views, err := NewRoomReadStore(q, nil).ListAvailable(context.Background(), "standard")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int32(1), views[0].ID)
	assert.Equal(t, int32(2), views[1].ID)
}

func TestRoomReadStore_ListRoomTypes(t *testing.T) {
	q := new(MockRoomReadQueries)
	q.On("ListRoomTypeSummaries", mock.Anything, mock.Anything).Return([]sqlc.ListRoomTypeSummariesRow{
		{RoomType: "Standard", PricePerNight: pgconv.NumericFromCents(15000), TotalRooms: 2, AvailableRooms: 2},
		{RoomType: "Suite", PricePerNight: pgconv.NumericFromCents(40000), TotalRooms: 1, AvailableRooms: 0},
	}, nil)

	views, err := NewRoomReadStore(q, nil).ListRoomTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Suite", views[1].RoomType)
	assert.Equal(t, int64(40000), views[1].PricePerNightCents)
	assert.Zero(t, views[1].AvailableRooms)
}
