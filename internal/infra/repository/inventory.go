package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryWriteQueries interface {
	SetLocalLockTimeout(ctx context.Context, db sqlc.DBTX, timeout string) error
	LockInventoryDays(ctx context.Context, db sqlc.DBTX, arg sqlc.LockInventoryDaysParams) ([]sqlc.InventoryDays, error)
	IncrementBookedCount(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementBookedCountParams) (int64, error)
	UpsertInventoryPriceOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertInventoryPriceOverrideParams) error
	ResetInventoryPriceOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.ResetInventoryPriceOverrideParams) (int64, error)
	UpsertInventoryTotal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertInventoryTotalParams) (int64, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
}

func NewInventoryRepository(queries InventoryWriteQueries) *InventoryRepository {
	return &InventoryRepository{queries: queries}
}

// SetLockTimeout bounds row-lock waits for the rest of the current transaction.
func (r *InventoryRepository) SetLockTimeout(ctx context.Context, tx sqlc.DBTX, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}
	if err := r.queries.SetLocalLockTimeout(ctx, tx, fmt.Sprintf("%dms", timeout.Milliseconds())); err != nil {
		return infra.WrapRepoErr("failed to set lock timeout", err)
	}
	return nil
}

func (r *InventoryRepository) LockRange(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, stay inventory.StayRange) ([]*inventory.Day, error) {
	rows, err := r.queries.LockInventoryDays(ctx, tx, sqlc.LockInventoryDaysParams{
		RoomTypeID: roomTypeID,
		CheckIn:    pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:   pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock inventory days", err)
	}

	days, err := converter.DaysFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert inventory rows", err)
	}
	return days, nil
}

func (r *InventoryRepository) IncrementBooked(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, stay inventory.StayRange) (int64, error) {
	n, err := r.queries.IncrementBookedCount(ctx, tx, sqlc.IncrementBookedCountParams{
		RoomTypeID: roomTypeID,
		CheckIn:    pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:   pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment booked count", err)
	}
	return n, nil
}

func (r *InventoryRepository) UpsertPriceOverride(
	ctx context.Context,
	tx sqlc.DBTX,
	roomTypeID uuid.UUID,
	date caldate.Date,
	defaultInventory int,
	price decimal.Decimal,
) error {
	err := r.queries.UpsertInventoryPriceOverride(ctx, tx, sqlc.UpsertInventoryPriceOverrideParams{
		RoomTypeID:       roomTypeID,
		Date:             pgconv.DateToPgtype(date),
		DefaultInventory: int32(defaultInventory), // #nosec G115 -- room counts are small
		PriceOverride:    pgconv.DecimalToNumeric(price),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert price override", err)
	}
	return nil
}

func (r *InventoryRepository) ResetPriceOverride(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, date caldate.Date) error {
	n, err := r.queries.ResetInventoryPriceOverride(ctx, tx, sqlc.ResetInventoryPriceOverrideParams{
		RoomTypeID: roomTypeID,
		Date:       pgconv.DateToPgtype(date),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reset price override", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("inventory day not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpsertTotal creates or resizes a ledger row. Existing rows are only resized
// when the new total still covers booked plus blocked.
func (r *InventoryRepository) UpsertTotal(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, date caldate.Date, total int) error {
	n, err := r.queries.UpsertInventoryTotal(ctx, tx, sqlc.UpsertInventoryTotalParams{
		RoomTypeID:     roomTypeID,
		Date:           pgconv.DateToPgtype(date),
		TotalInventory: int32(total), // #nosec G115 -- validated by the caller
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert total inventory", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("total inventory below committed",
			errs.Wrapf(inventory.ErrCapacityBelowCommitted, "%s", date), infra.KindConflict)
	}
	return nil
}
