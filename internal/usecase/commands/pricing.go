package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAdminPeriodDays bounds pricing and seeding periods.
const MaxAdminPeriodDays = 366

var (
	ErrInvalidPricing         = errs.New("invalid pricing request")
	ErrInvalidInventoryTotal  = errs.New("total inventory must be non-negative")
	ErrCapacityBelowCommitted = errs.New("total inventory below booked plus blocked")
	ErrInventoryDayNotFound   = errs.New("inventory day not found")
)

type BulkPriceInput struct {
	RoomTypeID uuid.UUID
	From       caldate.Date
	To         caldate.Date
	Mode       string
	Value      decimal.Decimal
	// Weekdays uses 0 for Sunday; empty applies the price to every day of the period.
	Weekdays []int
}

type SeedInventoryInput struct {
	RoomTypeID uuid.UUID
	From       caldate.Date
	To         caldate.Date
	Total      int
}

type InventoryCommands interface {
	BulkUpdatePrices(ctx context.Context, in BulkPriceInput) (int, error)
	ResetPriceOverride(ctx context.Context, roomTypeID uuid.UUID, date caldate.Date) error
	SeedInventory(ctx context.Context, in SeedInventoryInput) (int, error)
}

type inventoryUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryUseCase(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow}
}

func (uc *inventoryUseCaseImpl) BulkUpdatePrices(ctx context.Context, in BulkPriceInput) (int, error) {
	period, err := adminPeriod(in.From, in.To)
	if err != nil {
		return 0, err
	}

	adj, err := inventory.NewPriceAdjustment(inventory.AdjustmentMode(in.Mode), in.Value)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidPricing)
	}
	weekdays, err := weekdaySet(in.Weekdays)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidPricing)
	}

	rt, err := uc.roomType(ctx, in.RoomTypeID)
	if err != nil {
		return 0, err
	}
	price, err := adj.Apply(rt.BasePrice)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidPricing)
	}

	rooms, err := uc.uow.CommandReads().CountRooms(ctx, in.RoomTypeID)
	if err != nil {
		return 0, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	defaultInventory := max(rooms, 1)

	var updated int
	err = uc.uow.WithinRetry(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated = 0
		for _, date := range period.Dates() {
			if !weekdays.Contains(date.Weekday()) {
				continue
			}
			if err := tx.Inventory().UpsertPriceOverride(ctx, tx.DB(), in.RoomTypeID, date, defaultInventory, price); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, shared.ErrPersistenceFailure)
	}

	slog.Info("bulk price update applied",
		"room_type_id", in.RoomTypeID,
		"period", period.String(),
		"mode", in.Mode,
		"price", price.StringFixed(inventory.MoneyPlaces),
		"days", updated)
	return updated, nil
}

func (uc *inventoryUseCaseImpl) ResetPriceOverride(ctx context.Context, roomTypeID uuid.UUID, date caldate.Date) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inventory().ResetPriceOverride(ctx, tx.DB(), roomTypeID, date)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrInventoryDayNotFound)
		}
		return errs.Mark(err, shared.ErrPersistenceFailure)
	}
	return nil
}

func (uc *inventoryUseCaseImpl) SeedInventory(ctx context.Context, in SeedInventoryInput) (int, error) {
	period, err := adminPeriod(in.From, in.To)
	if err != nil {
		return 0, err
	}
	if in.Total < 0 {
		return 0, ErrInvalidInventoryTotal
	}
	if _, err := uc.roomType(ctx, in.RoomTypeID); err != nil {
		return 0, err
	}

	err = uc.uow.WithinRetry(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, date := range period.Dates() {
			if err := tx.Inventory().UpsertTotal(ctx, tx.DB(), in.RoomTypeID, date, in.Total); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return 0, errs.Mark(err, ErrCapacityBelowCommitted)
		}
		return 0, errs.Mark(err, shared.ErrPersistenceFailure)
	}

	slog.Info("inventory seeded",
		"room_type_id", in.RoomTypeID,
		"period", period.String(),
		"total", in.Total)
	return period.Nights(), nil
}

func (uc *inventoryUseCaseImpl) roomType(ctx context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	rt, err := uc.uow.CommandReads().RoomTypeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	return rt, nil
}

func adminPeriod(from, to caldate.Date) (inventory.StayRange, error) {
	period, err := inventory.InclusivePeriod(from, to)
	if err != nil {
		return inventory.StayRange{}, errs.Mark(err, shared.ErrInvalidRange)
	}
	if period.Nights() > MaxAdminPeriodDays {
		return inventory.StayRange{}, shared.ErrTooManyNights
	}
	return period, nil
}

func weekdaySet(days []int) (inventory.WeekdaySet, error) {
	if len(days) == 0 {
		return inventory.AllWeekdays(), nil
	}
	weekdays := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return inventory.NewWeekdaySet(weekdays...)
}
