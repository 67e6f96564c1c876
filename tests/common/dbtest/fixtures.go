//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, telegramID int64, firstName string) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (telegram_id, first_name) VALUES ($1, $2)
		 ON CONFLICT (telegram_id) DO UPDATE SET first_name = EXCLUDED.first_name
		 RETURNING id`,
		telegramID, firstName).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestRoom(t *testing.T, db DBLike, roomType string, price string, availability string) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (room_type, price_per_night, availability) VALUES ($1, $2::numeric, $3) RETURNING id",
		roomType, price, availability).Scan(&id)
	require.NoError(t, err)

	return id
}

func RoomAvailability(t *testing.T, db DBLike, roomID int32) string {
	t.Helper()

	var availability string
	err := db.QueryRow(context.Background(), "SELECT availability FROM rooms WHERE id = $1", roomID).Scan(&availability)
	require.NoError(t, err)
	return availability
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the default inventory: two Standard, one Deluxe, one occupied Suite
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (room_type, price_per_night, availability) VALUES
		    ('Standard', 150.00, 'available'),
		    ('Standard', 150.00, 'available'),
		    ('Deluxe', 250.00, 'available'),
		    ('Suite', 400.00, 'occupied');
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
