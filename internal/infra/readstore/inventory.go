package readstore

import (
	"context"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryReadQueries interface {
	ListInventoryDays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInventoryDaysParams) ([]sqlc.InventoryDays, error)
	ListInventoryDaysInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInventoryDaysInRangeParams) ([]sqlc.InventoryDays, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryReadStore) LedgerFor(ctx context.Context, roomTypeID uuid.UUID, stay inventory.StayRange) (inventory.Ledger, error) {
	rows, err := r.queries.ListInventoryDays(ctx, r.db, sqlc.ListInventoryDaysParams{
		RoomTypeID: roomTypeID,
		CheckIn:    pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:   pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory days", err)
	}

	days, err := converter.DaysFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert inventory rows", err)
	}
	return inventory.NewLedger(days), nil
}

func (r *InventoryReadStore) LedgersInRange(ctx context.Context, stay inventory.StayRange) (map[uuid.UUID]inventory.Ledger, error) {
	rows, err := r.queries.ListInventoryDaysInRange(ctx, r.db, sqlc.ListInventoryDaysInRangeParams{
		CheckIn:  pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut: pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory days in range", err)
	}

	ledgers := make(map[uuid.UUID]inventory.Ledger)
	for _, row := range rows {
		day, err := converter.DayFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert inventory row", err)
		}
		ledger, ok := ledgers[row.RoomTypeID]
		if !ok {
			ledger = inventory.Ledger{}
			ledgers[row.RoomTypeID] = ledger
		}
		ledger[day.Date()] = day
	}
	return ledgers, nil
}
