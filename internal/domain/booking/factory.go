package booking

import (
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateHold builds a HOLD booking against a ledger whose rows are already locked.
// Every night is re-checked, priced through the shared resolver and booked on the
// ledger; the caller persists the booked counts in the same transaction.
func (f *Factory) CreateHold(
	customer Customer,
	rt *roomtype.RoomType,
	stay inventory.StayRange,
	ledger inventory.Ledger,
) (*Booking, error) {
	if err := inventory.CheckAvailability(stay, ledger); err != nil {
		return nil, err
	}

	quote := inventory.BuildQuote(stay, rt.BasePrice(), ledger)
	items := make([]LineItem, 0, len(quote.Nights))
	for _, night := range quote.Nights {
		item, err := NewLineItem(rt.ID(), night.Date, night.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	b, err := NewBooking(customer, rt.ID(), stay, items, f.Clock.Now())
	if err != nil {
		return nil, err
	}

	for _, date := range stay.Dates() {
		if err := ledger[date].Book(); err != nil {
			return nil, err
		}
	}
	return b, nil
}
