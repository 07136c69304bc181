package converter

import (
	"fmt"

	"hotel-booking/internal/domain/inventory"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func DayFromRow(row sqlc.InventoryDays) (*inventory.Day, error) {
	override, err := pgconv.DecimalPtrFromNumeric(row.PriceOverride)
	if err != nil {
		return nil, fmt.Errorf("inventory %s %s price override: %w", row.RoomTypeID, pgconv.DateFromPgtype(row.Date), err)
	}
	return inventory.ReconstructDay(
		row.RoomTypeID,
		pgconv.DateFromPgtype(row.Date),
		int(row.TotalInventory),
		int(row.BookedCount),
		int(row.BlockedCount),
		override,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func DaysFromRows(rows []sqlc.InventoryDays) ([]*inventory.Day, error) {
	days := make([]*inventory.Day, 0, len(rows))
	for _, row := range rows {
		d, err := DayFromRow(row)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
