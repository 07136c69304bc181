package commands

import (
	"context"
	"time"

	"hotel-booking/internal/pkg/caldate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingSummary is what the notifier receives after a booking commits.
type BookingSummary struct {
	BookingID    uuid.UUID
	GuestName    string
	GuestEmail   string
	RoomTypeID   uuid.UUID
	RoomTypeName string
	CheckIn      caldate.Date
	CheckOut     caldate.Date
	Nights       int
	Total        decimal.Decimal
	CreatedAt    time.Time
}

// Notifier must not block the caller; delivery failures stay inside the implementation.
type Notifier interface {
	BookingCreated(ctx context.Context, summary BookingSummary)
}

type ReservationOutcome string

const (
	OutcomeBooked      ReservationOutcome = "booked"
	OutcomeReplayed    ReservationOutcome = "replayed"
	OutcomeOverbooked  ReservationOutcome = "overbooked"
	OutcomeMissing     ReservationOutcome = "inventory_missing"
	OutcomeLockTimeout ReservationOutcome = "lock_timeout"
	OutcomeRejected    ReservationOutcome = "rejected"
	OutcomeFailed      ReservationOutcome = "failed"
)

type ReservationRecorder interface {
	ReservationFinished(outcome ReservationOutcome, elapsed time.Duration)
	LockAcquired(wait time.Duration)
}

type NopNotifier struct{}

func (NopNotifier) BookingCreated(context.Context, BookingSummary) {}

type NopRecorder struct{}

func (NopRecorder) ReservationFinished(ReservationOutcome, time.Duration) {}
func (NopRecorder) LockAcquired(time.Duration)                            {}
