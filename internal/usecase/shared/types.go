package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomTypeSnapshot struct {
	ID        uuid.UUID
	Name      string
	Capacity  int
	BasePrice decimal.Decimal
}

type RoomSnapshot struct {
	ID         uuid.UUID
	RoomTypeID uuid.UUID
	Number     string
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
