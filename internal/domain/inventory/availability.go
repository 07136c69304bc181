package inventory

import (
	"errors"
	"fmt"

	"hotel-booking/internal/pkg/caldate"
)

var (
	// ErrInventoryMissing means a night has no ledger row, usually unseeded inventory.
	ErrInventoryMissing = errors.New("inventory missing")
	// ErrOverbooked means a night has no free capacity left.
	ErrOverbooked = errors.New("no free capacity")
)

// Ledger is the set of rows covering one room type over one stay, keyed by date.
type Ledger map[caldate.Date]*Day

func NewLedger(days []*Day) Ledger {
	l := make(Ledger, len(days))
	for _, d := range days {
		l[d.Date()] = d
	}
	return l
}

// CheckAvailability walks the stay in date order and reports the first night
// that cannot be sold. A nil result means every night has free capacity.
func CheckAvailability(stay StayRange, ledger Ledger) error {
	for _, date := range stay.Dates() {
		day, ok := ledger[date]
		if !ok {
			return fmt.Errorf("%w: %s", ErrInventoryMissing, date)
		}
		if !day.HasFreeCapacity() {
			return fmt.Errorf("%w: %s", ErrOverbooked, date)
		}
	}
	return nil
}

func IsAvailable(stay StayRange, ledger Ledger) bool {
	return CheckAvailability(stay, ledger) == nil
}

// IsUnavailable reports whether err is one of the outcomes a guest sees as "not available".
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrInventoryMissing) || errors.Is(err, ErrOverbooked)
}
