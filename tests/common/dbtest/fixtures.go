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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateRoomType(t *testing.T, db DBLike, name string, capacity int, basePrice string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO room_types (id, name, capacity, base_price) VALUES ($1, $2, $3, $4::text::numeric)",
		id, name, capacity, basePrice)
	require.NoError(t, err)
	return id
}

func CreateRoom(t *testing.T, db DBLike, roomTypeID uuid.UUID, number string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, room_type_id, room_number) VALUES ($1, $2, $3)",
		id, roomTypeID, number)
	require.NoError(t, err)
	return id
}

// SeedInventory inserts one ledger row per date in [from, to) with the given total.
func SeedInventory(t *testing.T, db DBLike, roomTypeID uuid.UUID, from, to string, total int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO inventory_days (room_type_id, date, total_inventory)
		SELECT $1::uuid, d::date, $4::int
		FROM generate_series($2::text::date, $3::text::date - 1, interval '1 day') AS d`,
		roomTypeID, from, to, total)
	require.NoError(t, err)
}

func SetPriceOverride(t *testing.T, db DBLike, roomTypeID uuid.UUID, date, price string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE inventory_days SET price_override = $3::text::numeric WHERE room_type_id = $1 AND date = $2::text::date",
		roomTypeID, date, price)
	require.NoError(t, err)
}

func BookedCount(t *testing.T, db DBLike, roomTypeID uuid.UUID, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT booked_count FROM inventory_days WHERE room_type_id = $1 AND date = $2::text::date",
		roomTypeID, date).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountBookings(t *testing.T, db DBLike, roomTypeID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE room_type_id = $1", roomTypeID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountBookingItems(t *testing.T, db DBLike, roomTypeID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_items WHERE room_type_id = $1", roomTypeID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountIdempotencyKeys(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM idempotency_keys").Scan(&n)
	require.NoError(t, err)
	return n
}

// FailLedgerUpdates makes every UPDATE of the room type's inventory rows raise
// until the test ends. Inserts and other room types are untouched.
func FailLedgerUpdates(t *testing.T, db DBLike, roomTypeID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	name := "fail_ledger_" + strings.ReplaceAll(roomTypeID.String(), "-", "")

	_, err := db.Exec(ctx, fmt.Sprintf(`
		CREATE FUNCTION %s() RETURNS trigger LANGUAGE plpgsql AS $$
		BEGIN
		  IF NEW.room_type_id = '%s'::uuid THEN
		    RAISE EXCEPTION 'ledger update rejected';
		  END IF;
		  RETURN NEW;
		END $$`, name, roomTypeID))
	require.NoError(t, err)
	_, err = db.Exec(ctx, fmt.Sprintf(
		"CREATE TRIGGER %s BEFORE UPDATE ON inventory_days FOR EACH ROW EXECUTE FUNCTION %s()", name, name))
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Exec(context.Background(), fmt.Sprintf("DROP TRIGGER IF EXISTS %s ON inventory_days", name))
		_, _ = db.Exec(context.Background(), fmt.Sprintf("DROP FUNCTION IF EXISTS %s()", name))
	})
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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

	return nil
}
