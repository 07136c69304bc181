package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/caldate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: single-attempt transaction; a failed reservation is never replayed silently
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinRetry: retries serialization failures and deadlocks; for idempotent writes only
	WithinRetry(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Inventory() InventoryRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	CountRooms(ctx context.Context, roomTypeID uuid.UUID) (int, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, endpoint string) (*IdempotencyRecord, error)
}

type InventoryRepository interface {
	SetLockTimeout(ctx context.Context, tx sqlc.DBTX, timeout time.Duration) error
	// LockRange returns the existing rows of the stay, locked in ascending date order.
	LockRange(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, stay inventory.StayRange) ([]*inventory.Day, error)
	IncrementBooked(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, stay inventory.StayRange) (int64, error)
	UpsertPriceOverride(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, date caldate.Date, defaultInventory int, price decimal.Decimal) error
	ResetPriceOverride(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, date caldate.Date) error
	UpsertTotal(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, date caldate.Date, total int) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	AssignRoom(ctx context.Context, tx sqlc.DBTX, bookingID, itemID uuid.UUID, roomID *uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the endpoint.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, resultHash string, bookingID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}
