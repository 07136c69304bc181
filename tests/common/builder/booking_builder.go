//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod string
	ExtraGuests   int
	RoomTypeID    uuid.UUID
	RoomTypeName  string
	BasePrice     decimal.Decimal
	CheckIn       caldate.Date
	CheckOut      caldate.Date
	Overrides     map[caldate.Date]decimal.Decimal
	Status        booking.Status
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		CustomerName:  "Somchai Jaidee",
		CustomerEmail: "guest@example.com",
		CustomerPhone: "+66 81 234 5678",
		PaymentMethod: "pay_at_hotel",
		ExtraGuests:   0,
		RoomTypeID:    uuid.New(),
		RoomTypeName:  "Deluxe Double",
		BasePrice:     decimal.NewFromInt(1000),
		CheckIn:       caldate.MustParse("2030-01-10"),
		CheckOut:      caldate.MustParse("2030-01-12"),
		Overrides:     map[caldate.Date]decimal.Decimal{},
		Status:        booking.StatusHold,
		CreatedAt:     time.Date(2029, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCustomer() (booking.Customer, error) {
	return booking.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.PaymentMethod, b.ExtraGuests)
}

func (b *BookingBuilder) BuildStay() (inventory.StayRange, error) {
	return inventory.NewStayRange(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) BuildRoomType() *roomtype.RoomType {
	rt, err := roomtype.ReconstructRoomType(b.RoomTypeID, b.RoomTypeName, 2, b.BasePrice)
	if err != nil {
		panic(err)
	}
	return rt
}

// BuildDays returns one ledger row per night with the given total inventory.
func (b *BookingBuilder) BuildDays(total, booked int) []*inventory.Day {
	var days []*inventory.Day
	for d := b.CheckIn; d.Before(b.CheckOut); d = d.AddDays(1) {
		var override *decimal.Decimal
		if p, ok := b.Overrides[d]; ok {
			override = &p
		}
		day, err := inventory.ReconstructDay(b.RoomTypeID, d, total, booked, 0, override, b.CreatedAt)
		if err != nil {
			panic(err)
		}
		days = append(days, day)
	}
	return days
}

func (b *BookingBuilder) BuildLedger(total int) inventory.Ledger {
	return inventory.NewLedger(b.BuildDays(total, 0))
}

func (b *BookingBuilder) BuildRoomTypeSnapshot() *shared.RoomTypeSnapshot {
	return &shared.RoomTypeSnapshot{
		ID:        b.RoomTypeID,
		Name:      b.RoomTypeName,
		Capacity:  2,
		BasePrice: b.BasePrice,
	}
}

func (b *BookingBuilder) BuildRoomTypeView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:        b.RoomTypeID,
		Name:      b.RoomTypeName,
		Capacity:  2,
		BasePrice: b.BasePrice,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildItems() ([]booking.LineItem, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	quote := inventory.BuildQuote(stay, b.BasePrice, b.BuildLedger(1))
	items := make([]booking.LineItem, 0, len(quote.Nights))
	for _, n := range quote.Nights {
		items = append(items, booking.ReconstructLineItem(uuid.New(), b.RoomTypeID, n.Date, n.Price, nil))
	}
	return items, nil
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	customer, err := b.BuildCustomer()
	if err != nil {
		return nil, err
	}
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	items, err := b.BuildItems()
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price())
	}
	return booking.ReconstructBooking(b.ID, customer, b.RoomTypeID, stay, items, total, b.Status, b.CreatedAt, b.CreatedAt)
}

// BuildView mirrors what the read side returns for the built booking.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	items, err := b.BuildItems()
	if err != nil {
		panic(err)
	}
	view := &queries.BookingView{
		ID:            b.ID,
		Status:        b.Status.String(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		ExtraGuests:   b.ExtraGuests,
		RoomTypeID:    b.RoomTypeID,
		RoomTypeName:  b.RoomTypeName,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        len(items),
		TotalPrice:    decimal.Zero,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
	if b.PaymentMethod != "" {
		pm := b.PaymentMethod
		view.PaymentMethod = &pm
	}
	for _, it := range items {
		view.TotalPrice = view.TotalPrice.Add(it.Price())
		view.Items = append(view.Items, queries.BookingItemView{ID: it.ID(), Date: it.Date(), Price: it.Price()})
	}
	return view
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	v := b.BuildView()
	return &queries.BookingListItem{
		ID:            v.ID,
		Status:        v.Status,
		CustomerName:  v.CustomerName,
		CustomerEmail: v.CustomerEmail,
		RoomTypeID:    v.RoomTypeID,
		RoomTypeName:  v.RoomTypeName,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		TotalPrice:    v.TotalPrice,
		CreatedAt:     v.CreatedAt,
	}
}

func (b *BookingBuilder) BuildReserveInput() commands.ReserveInput {
	in := commands.ReserveInput{
		Customer: commands.CustomerInput{
			Name:        b.CustomerName,
			Email:       b.CustomerEmail,
			Phone:       b.CustomerPhone,
			ExtraGuests: b.ExtraGuests,
		},
		RoomTypeID: b.RoomTypeID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
	if b.PaymentMethod != "" {
		pm := b.PaymentMethod
		in.Customer.PaymentMethod = &pm
	}
	return in
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateReservationRequest {
	req := request.CreateReservationRequest{
		Customer: request.CustomerRequest{
			Name:        b.CustomerName,
			Email:       b.CustomerEmail,
			Phone:       b.CustomerPhone,
			ExtraGuests: b.ExtraGuests,
		},
		RoomTypeID: b.RoomTypeID,
		CheckIn:    b.CheckIn.String(),
		CheckOut:   b.CheckOut.String(),
	}
	if b.PaymentMethod != "" {
		pm := b.PaymentMethod
		req.Customer.PaymentMethod = &pm
	}
	return req
}

// Fluent builder methods
func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = caldate.MustParse(checkIn)
	b.CheckOut = caldate.MustParse(checkOut)
	return b
}

func (b *BookingBuilder) WithOverride(date string, price string) *BookingBuilder {
	b.Overrides[caldate.MustParse(date)] = decimal.RequireFromString(price)
	return b
}

func (b *BookingBuilder) WithBasePrice(price string) *BookingBuilder {
	b.BasePrice = decimal.RequireFromString(price)
	return b
}

func (b *BookingBuilder) WithRoomTypeID(id uuid.UUID) *BookingBuilder {
	b.RoomTypeID = id
	return b
}

func (b *BookingBuilder) WithRoomTypeName(name string) *BookingBuilder {
	b.RoomTypeName = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.CustomerEmail = email
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = booking.StatusConfirmed
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
