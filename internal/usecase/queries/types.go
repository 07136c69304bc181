package queries

import (
	"time"

	"hotel-booking/internal/pkg/caldate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomTypeView represents read-optimized room type data
type RoomTypeView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Capacity  int             `json:"capacity"`
	BasePrice decimal.Decimal `json:"base_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AvailabilityView struct {
	RoomTypeID uuid.UUID
	CheckIn    caldate.Date
	CheckOut   caldate.Date
	Nights     int
	Available  bool
}

type NightPriceView struct {
	Date  caldate.Date
	Price decimal.Decimal
}

type QuoteView struct {
	RoomTypeID   uuid.UUID
	RoomTypeName string
	CheckIn      caldate.Date
	CheckOut     caldate.Date
	Nights       []NightPriceView
	Total        decimal.Decimal
	Available    bool
}

type OfferView struct {
	RoomTypeID   uuid.UUID
	RoomTypeName string
	Capacity     int
	BasePrice    decimal.Decimal
	Nights       int
	TotalPrice   decimal.Decimal
}

type BookingItemView struct {
	ID         uuid.UUID
	Date       caldate.Date
	Price      decimal.Decimal
	RoomID     *uuid.UUID
	RoomNumber *string
}

type BookingView struct {
	ID            uuid.UUID
	Status        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod *string
	ExtraGuests   int
	RoomTypeID    uuid.UUID
	RoomTypeName  string
	CheckIn       caldate.Date
	CheckOut      caldate.Date
	Nights        int
	TotalPrice    decimal.Decimal
	Items         []BookingItemView
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BookingListItem struct {
	ID            uuid.UUID
	Status        string
	CustomerName  string
	CustomerEmail string
	RoomTypeID    uuid.UUID
	RoomTypeName  string
	CheckIn       caldate.Date
	CheckOut      caldate.Date
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
}

// IdempotencyKeyView represents read-optimized idempotency key data
type IdempotencyKeyView struct {
	Key              uuid.UUID
	Endpoint         string
	RequestHash      string
	ResponseBodyHash *string
	Status           string
	ResultBookingID  *uuid.UUID
	ExpiresAt        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
