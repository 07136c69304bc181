package inventory

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/pkg/caldate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCounts          = errors.New("inventory counts must be non-negative")
	ErrCapacityExceeded       = errors.New("booked plus blocked exceeds total inventory")
	ErrCapacityBelowCommitted = errors.New("total inventory below booked plus blocked")
	ErrNegativePrice          = errors.New("price cannot be negative")
	ErrPriceTooHigh           = errors.New("price exceeds the largest storable amount")
)

// Day is the ledger entry for one room type on one night.
type Day struct {
	roomTypeID    uuid.UUID
	date          caldate.Date
	total         int
	booked        int
	blocked       int
	priceOverride *decimal.Decimal
	updatedAt     time.Time
}

func NewDay(roomTypeID uuid.UUID, date caldate.Date, total int) (*Day, error) {
	if total < 0 {
		return nil, ErrInvalidCounts
	}
	return &Day{roomTypeID: roomTypeID, date: date, total: total}, nil
}

func ReconstructDay(
	roomTypeID uuid.UUID,
	date caldate.Date,
	total, booked, blocked int,
	priceOverride *decimal.Decimal,
	updatedAt time.Time,
) (*Day, error) {
	if total < 0 || booked < 0 || blocked < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCounts, date)
	}
	if booked+blocked > total {
		return nil, fmt.Errorf("%w: %s", ErrCapacityExceeded, date)
	}
	if priceOverride != nil && priceOverride.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativePrice, date)
	}
	return &Day{
		roomTypeID:    roomTypeID,
		date:          date,
		total:         total,
		booked:        booked,
		blocked:       blocked,
		priceOverride: priceOverride,
		updatedAt:     updatedAt,
	}, nil
}

func (d *Day) RoomTypeID() uuid.UUID           { return d.roomTypeID }
func (d *Day) Date() caldate.Date              { return d.date }
func (d *Day) Total() int                      { return d.total }
func (d *Day) Booked() int                     { return d.booked }
func (d *Day) Blocked() int                    { return d.blocked }
func (d *Day) PriceOverride() *decimal.Decimal { return d.priceOverride }
func (d *Day) UpdatedAt() time.Time            { return d.updatedAt }
func (d *Day) FreeCapacity() int               { return max(d.total-d.booked-d.blocked, 0) }
func (d *Day) HasFreeCapacity() bool           { return d.FreeCapacity() > 0 }

// Book takes one unit of free capacity.
func (d *Day) Book() error {
	if !d.HasFreeCapacity() {
		return fmt.Errorf("%w: %s", ErrOverbooked, d.date)
	}
	d.booked++
	return nil
}

func (d *Day) SetTotal(total int) error {
	if total < 0 {
		return ErrInvalidCounts
	}
	if d.booked+d.blocked > total {
		return fmt.Errorf("%w: %s", ErrCapacityBelowCommitted, d.date)
	}
	d.total = total
	return nil
}

// SetPriceOverride replaces the nightly price; nil falls back to the base price.
func (d *Day) SetPriceOverride(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return ErrNegativePrice
	}
	if price != nil && price.GreaterThan(MaxPrice) {
		return ErrPriceTooHigh
	}
	d.priceOverride = price
	return nil
}
