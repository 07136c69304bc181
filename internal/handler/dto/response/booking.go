package response

import (
	"time"

	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BookingItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Date       caldate.Date    `json:"date"`
	Price      decimal.Decimal `json:"price"`
	RoomID     *uuid.UUID      `json:"room_id,omitempty"`
	RoomNumber *string         `json:"room_number,omitempty"`
}

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	Status        string                `json:"status"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone"`
	PaymentMethod *string               `json:"payment_method,omitempty"`
	ExtraGuests   int                   `json:"extra_guests"`
	RoomTypeID    uuid.UUID             `json:"room_type_id"`
	RoomTypeName  string                `json:"room_type_name"`
	CheckIn       caldate.Date          `json:"check_in"`
	CheckOut      caldate.Date          `json:"check_out"`
	Nights        int                   `json:"nights"`
	TotalPrice    decimal.Decimal       `json:"total_price"`
	Items         []BookingItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// FromBookingView copies field-by-name; value types with unexported state (decimal,
// caldate) are assigned whole, so DeepCopy must stay off.
func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type BookingListItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	RoomTypeID    uuid.UUID       `json:"room_type_id"`
	RoomTypeName  string          `json:"room_type_name"`
	CheckIn       caldate.Date    `json:"check_in"`
	CheckOut      caldate.Date    `json:"check_out"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]BookingListItemResponse, 0, len(items))}
	if len(items) > 0 {
		if err := copier.Copy(&res.Items, items); err != nil {
			return nil, err
		}
	}
	if next != nil && next.After != "" {
		res.NextCursor = &next.After
	}
	return res, nil
}

type StatusChangeResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Changed   bool      `json:"changed"`
}

func FromStatusChange(r *commands.StatusChangeResult) *StatusChangeResponse {
	return &StatusChangeResponse{
		BookingID: r.BookingID,
		Status:    r.Status,
		Changed:   r.Changed,
	}
}

type DaysUpdatedResponse struct {
	DaysUpdated int `json:"days_updated"`
}
