package request

import (
	"strings"

	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Email         string  `json:"email" binding:"required,max=255"`
	Phone         string  `json:"phone" binding:"required,max=32"`
	PaymentMethod *string `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	ExtraGuests   int     `json:"extra_guests" binding:"min=0,max=20"`
}

type CreateReservationRequest struct {
	Customer   CustomerRequest `json:"customer" binding:"required"`
	RoomTypeID uuid.UUID       `json:"room_type_id" binding:"required"`
	CheckIn    string          `json:"check_in" binding:"required"`
	CheckOut   string          `json:"check_out" binding:"required"`
}

func (r CreateReservationRequest) GetPaymentMethod() *string {
	if r.Customer.PaymentMethod == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Customer.PaymentMethod)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateReservationRequest) ToInput(idempotencyKey *uuid.UUID) (commands.ReserveInput, error) {
	checkIn, err := caldate.Parse(r.CheckIn)
	if err != nil {
		return commands.ReserveInput{}, err
	}
	checkOut, err := caldate.Parse(r.CheckOut)
	if err != nil {
		return commands.ReserveInput{}, err
	}

	return commands.ReserveInput{
		Customer: commands.CustomerInput{
			Name:          r.Customer.Name,
			Email:         r.Customer.Email,
			Phone:         r.Customer.Phone,
			PaymentMethod: r.GetPaymentMethod(),
			ExtraGuests:   r.Customer.ExtraGuests,
		},
		RoomTypeID:     r.RoomTypeID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		IdempotencyKey: idempotencyKey,
	}, nil
}
