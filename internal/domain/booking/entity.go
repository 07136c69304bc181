package booking

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/pkg/caldate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemsMismatchStay  = errors.New("line items must cover every night of the stay in date order")
	ErrTotalMismatch      = errors.New("total price must equal the sum of line items")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrLineItemNotFound   = errors.New("line item not found")
	ErrNegativeItemPrice  = errors.New("line item price cannot be negative")
	ErrItemRoomTypeDiffer = errors.New("line item room type differs from booking")
)

// LineItem is one booked night with the price locked in at booking time.
type LineItem struct {
	id         uuid.UUID
	roomTypeID uuid.UUID
	date       caldate.Date
	price      decimal.Decimal
	roomID     *uuid.UUID
}

func NewLineItem(roomTypeID uuid.UUID, date caldate.Date, price decimal.Decimal) (LineItem, error) {
	if price.IsNegative() {
		return LineItem{}, ErrNegativeItemPrice
	}
	return LineItem{
		id:         uuid.New(),
		roomTypeID: roomTypeID,
		date:       date,
		price:      price.Round(inventory.MoneyPlaces),
	}, nil
}

func ReconstructLineItem(id, roomTypeID uuid.UUID, date caldate.Date, price decimal.Decimal, roomID *uuid.UUID) LineItem {
	return LineItem{id: id, roomTypeID: roomTypeID, date: date, price: price, roomID: roomID}
}

func (i LineItem) ID() uuid.UUID          { return i.id }
func (i LineItem) RoomTypeID() uuid.UUID  { return i.roomTypeID }
func (i LineItem) Date() caldate.Date     { return i.date }
func (i LineItem) Price() decimal.Decimal { return i.price }
func (i LineItem) RoomID() *uuid.UUID     { return i.roomID }
func (i LineItem) HasRoomAssigned() bool  { return i.roomID != nil }

// Booking is the header plus its ordered per-night line items.
type Booking struct {
	id         uuid.UUID
	customer   Customer
	roomTypeID uuid.UUID
	stay       inventory.StayRange
	items      []LineItem
	total      decimal.Decimal
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a HOLD booking. items must hold exactly one entry per
// night of stay, in ascending date order.
func NewBooking(
	customer Customer,
	roomTypeID uuid.UUID,
	stay inventory.StayRange,
	items []LineItem,
	now time.Time,
) (*Booking, error) {
	total, err := validateItems(roomTypeID, stay, items)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:         uuid.New(),
		customer:   customer,
		roomTypeID: roomTypeID,
		stay:       stay,
		items:      append([]LineItem(nil), items...),
		total:      total,
		status:     StatusHold,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	customer Customer,
	roomTypeID uuid.UUID,
	stay inventory.StayRange,
	items []LineItem,
	total decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	sum, err := validateItems(roomTypeID, stay, items)
	if err != nil {
		return nil, err
	}
	if !sum.Equal(total) {
		return nil, fmt.Errorf("%w: items %s, header %s", ErrTotalMismatch, sum, total)
	}
	return &Booking{
		id:         id,
		customer:   customer,
		roomTypeID: roomTypeID,
		stay:       stay,
		items:      append([]LineItem(nil), items...),
		total:      total,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func validateItems(roomTypeID uuid.UUID, stay inventory.StayRange, items []LineItem) (decimal.Decimal, error) {
	dates := stay.Dates()
	if len(items) != len(dates) {
		return decimal.Zero, fmt.Errorf("%w: %d items for %d nights", ErrItemsMismatchStay, len(items), len(dates))
	}
	total := decimal.Zero
	for i, item := range items {
		if !item.date.Equal(dates[i]) {
			return decimal.Zero, fmt.Errorf("%w: item %d is %s, want %s", ErrItemsMismatchStay, i, item.date, dates[i])
		}
		if item.roomTypeID != roomTypeID {
			return decimal.Zero, ErrItemRoomTypeDiffer
		}
		total = total.Add(item.price)
	}
	return total.Round(inventory.MoneyPlaces), nil
}

// TransitionTo moves the booking to next. Setting the current status again is a no-op
// and reports false.
func (b *Booking) TransitionTo(next Status, now time.Time) (bool, error) {
	if !next.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if !b.status.CanTransitionTo(next) {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.status, next)
	}
	if b.status == next {
		return false, nil
	}
	b.status = next
	b.updatedAt = now
	return true, nil
}

func (b *Booking) Item(itemID uuid.UUID) (LineItem, error) {
	for _, item := range b.items {
		if item.id == itemID {
			return item, nil
		}
	}
	return LineItem{}, ErrLineItemNotFound
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) Customer() Customer        { return b.customer }
func (b *Booking) RoomTypeID() uuid.UUID     { return b.roomTypeID }
func (b *Booking) Stay() inventory.StayRange { return b.stay }
func (b *Booking) Items() []LineItem         { return append([]LineItem(nil), b.items...) }
func (b *Booking) Nights() int               { return len(b.items) }
func (b *Booking) Total() decimal.Decimal    { return b.total }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
