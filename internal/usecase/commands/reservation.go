package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const ReserveEndpoint = "POST /api/reservations"

var (
	ErrInvalidCustomer       = errs.New("invalid customer")
	ErrIdempotencyKeyReused  = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	errLedgerDrift           = errs.New("locked ledger rows changed during reservation")
)

type CustomerInput struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	ExtraGuests   int     `json:"extra_guests"`
}

type ReserveInput struct {
	Customer       CustomerInput `json:"customer"`
	RoomTypeID     uuid.UUID     `json:"room_type_id"`
	CheckIn        caldate.Date  `json:"check_in"`
	CheckOut       caldate.Date  `json:"check_out"`
	IdempotencyKey *uuid.UUID    `json:"-"`
}

type ReserveResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
}

type ReservationSettings struct {
	LockTimeout    time.Duration
	IdempotencyTTL time.Duration
	MaxNights      int
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	bookings queries.BookingQueries
	factory  *booking.Factory
	notifier Notifier
	recorder ReservationRecorder
	clock    clock.Clock
	settings ReservationSettings
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	bookings queries.BookingQueries,
	factory *booking.Factory,
	notifier Notifier,
	recorder ReservationRecorder,
	clk clock.Clock,
	settings ReservationSettings,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		bookings: bookings,
		factory:  factory,
		notifier: notifier,
		recorder: recorder,
		clock:    clk,
		settings: settings,
	}
}

func (r *reservationUseCaseImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	started := time.Now()

	res, outcome, err := r.reserve(ctx, in)
	r.recorder.ReservationFinished(outcome, time.Since(started))
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationUseCaseImpl) reserve(ctx context.Context, in ReserveInput) (*ReserveResult, ReservationOutcome, error) {
	stay, err := inventory.NewStayRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, OutcomeRejected, errs.Mark(err, shared.ErrInvalidRange)
	}
	if r.settings.MaxNights > 0 && stay.Nights() > r.settings.MaxNights {
		return nil, OutcomeRejected, shared.ErrTooManyNights
	}

	customer, err := booking.NewCustomer(
		in.Customer.Name,
		in.Customer.Email,
		in.Customer.Phone,
		derefString(in.Customer.PaymentMethod),
		in.Customer.ExtraGuests,
	)
	if err != nil {
		return nil, OutcomeRejected, errs.Mark(err, ErrInvalidCustomer)
	}

	rt, err := r.loadRoomType(ctx, in.RoomTypeID)
	if err != nil {
		return nil, OutcomeRejected, err
	}

	var requestHash string
	if in.IdempotencyKey != nil {
		requestHash = calculateRequestHash(in, customer)
		replay, err := r.claimKey(ctx, *in.IdempotencyKey, requestHash)
		if err != nil {
			return nil, OutcomeRejected, err
		}
		if replay != nil {
			return &ReserveResult{Booking: replay, IsReplayed: true}, OutcomeReplayed, nil
		}
	}

	created, err := r.executeReservationTransaction(ctx, customer, rt, stay, in.IdempotencyKey)
	if err != nil {
		if in.IdempotencyKey != nil {
			r.releaseKey(ctx, *in.IdempotencyKey)
		}
		outcome, mapped := r.classify(err, in.RoomTypeID, stay)
		return nil, outcome, mapped
	}

	r.notifier.BookingCreated(ctx, BookingSummary{
		BookingID:    created.ID(),
		GuestName:    created.Customer().Name(),
		GuestEmail:   created.Customer().Email(),
		RoomTypeID:   rt.ID(),
		RoomTypeName: rt.Name(),
		CheckIn:      stay.CheckIn(),
		CheckOut:     stay.CheckOut(),
		Nights:       created.Nights(),
		Total:        created.Total(),
		CreatedAt:    created.CreatedAt(),
	})

	return &ReserveResult{Booking: bookingViewFromAggregate(created, rt)}, OutcomeBooked, nil
}

// executeReservationTransaction locks the stay's ledger rows in date order, books
// every night and writes the booking in a single attempt.
func (r *reservationUseCaseImpl) executeReservationTransaction(
	ctx context.Context,
	customer booking.Customer,
	rt *roomtype.RoomType,
	stay inventory.StayRange,
	idempotencyKey *uuid.UUID,
) (*booking.Booking, error) {
	var created *booking.Booking
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inventory().SetLockTimeout(ctx, tx.DB(), r.settings.LockTimeout); err != nil {
			return err
		}

		lockStarted := time.Now()
		days, err := tx.Inventory().LockRange(ctx, tx.DB(), rt.ID(), stay)
		if err != nil {
			return err
		}
		r.recorder.LockAcquired(time.Since(lockStarted))

		b, err := r.factory.CreateHold(customer, rt, stay, inventory.NewLedger(days))
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}

		updated, err := tx.Inventory().IncrementBooked(ctx, tx.DB(), rt.ID(), stay)
		if err != nil {
			return err
		}
		if updated != int64(stay.Nights()) {
			return errs.Wrapf(errLedgerDrift, "updated %d of %d nights", updated, stay.Nights())
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, ReserveEndpoint, calculateIDHash(b.ID()), b.ID()); err != nil {
				return err
			}
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *reservationUseCaseImpl) classify(err error, roomTypeID uuid.UUID, stay inventory.StayRange) (ReservationOutcome, error) {
	switch {
	case errs.Is(err, inventory.ErrInventoryMissing):
		slog.Warn("inventory row missing for reservation",
			"room_type_id", roomTypeID,
			"stay", stay.String(),
			"error", err.Error())
		return OutcomeMissing, errs.Mark(err, shared.ErrUnavailable)
	case errs.Is(err, inventory.ErrOverbooked):
		slog.Debug("reservation rejected: overbooked",
			"room_type_id", roomTypeID,
			"stay", stay.String(),
			"error", err.Error())
		return OutcomeOverbooked, errs.Mark(err, shared.ErrUnavailable)
	case infra.IsKind(err, infra.KindLockTimeout):
		slog.Info("reservation lock wait exceeded",
			"room_type_id", roomTypeID,
			"stay", stay.String())
		return OutcomeLockTimeout, errs.Mark(err, shared.ErrUnavailable)
	default:
		slog.Error("reservation transaction failed",
			"room_type_id", roomTypeID,
			"stay", stay.String(),
			"error", err.Error())
		return OutcomeFailed, errs.Mark(err, shared.ErrPersistenceFailure)
	}
}

func (r *reservationUseCaseImpl) loadRoomType(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error) {
	snap, err := r.uow.CommandReads().RoomTypeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}

	rt, err := roomtype.ReconstructRoomType(snap.ID, snap.Name, snap.Capacity, snap.BasePrice)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	return rt, nil
}

// claimKey records the key as processing. A non-nil view means the request already
// completed and must be replayed.
func (r *reservationUseCaseImpl) claimKey(ctx context.Context, key uuid.UUID, requestHash string) (*queries.BookingView, error) {
	now := r.clock.Now()
	expiresAt := now.Add(r.settings.IdempotencyTTL)

	var existing *shared.IdempotencyRecord
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, ReserveEndpoint, requestHash, expiresAt)
		if err != nil || inserted {
			return err
		}

		rec, err := tx.Reads().IdempotencyByKey(ctx, key, ReserveEndpoint)
		if err != nil {
			return err
		}
		if rec.ExpiresAt.After(now) {
			existing = rec
			return nil
		}

		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, ReserveEndpoint, requestHash, expiresAt, now)
		if err != nil {
			return err
		}
		if !claimed {
			existing = rec
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Released between insert and read; the client may retry.
			return nil, ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	if existing == nil {
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}
	if existing.Status != shared.IdempotencyStatusCompleted {
		return nil, ErrIdempotencyInProgress
	}
	if existing.ResultBookingID == nil {
		return nil, errs.Mark(errs.New("completed idempotency key without booking"), shared.ErrPersistenceFailure)
	}
	return r.bookings.GetByID(ctx, *existing.ResultBookingID)
}

func (r *reservationUseCaseImpl) releaseKey(ctx context.Context, key uuid.UUID) {
	err := r.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, ReserveEndpoint)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

func bookingViewFromAggregate(b *booking.Booking, rt *roomtype.RoomType) *queries.BookingView {
	items := make([]queries.BookingItemView, 0, b.Nights())
	for _, item := range b.Items() {
		items = append(items, queries.BookingItemView{
			ID:     item.ID(),
			Date:   item.Date(),
			Price:  item.Price(),
			RoomID: item.RoomID(),
		})
	}

	c := b.Customer()
	var paymentMethod *string
	if pm := c.PaymentMethod(); pm != "" {
		paymentMethod = &pm
	}

	return &queries.BookingView{
		ID:            b.ID(),
		Status:        b.Status().String(),
		CustomerName:  c.Name(),
		CustomerEmail: c.Email(),
		CustomerPhone: c.Phone(),
		PaymentMethod: paymentMethod,
		ExtraGuests:   c.ExtraGuests(),
		RoomTypeID:    rt.ID(),
		RoomTypeName:  rt.Name(),
		CheckIn:       b.Stay().CheckIn(),
		CheckOut:      b.Stay().CheckOut(),
		Nights:        b.Nights(),
		TotalPrice:    b.Total(),
		Items:         items,
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

// calculateRequestHash hashes the normalized request so whitespace-only differences
// still match the stored key.
func calculateRequestHash(in ReserveInput, customer booking.Customer) string {
	normalized := in
	normalized.Customer = CustomerInput{
		Name:        customer.Name(),
		Email:       customer.Email(),
		Phone:       customer.Phone(),
		ExtraGuests: customer.ExtraGuests(),
	}
	if pm := customer.PaymentMethod(); pm != "" {
		normalized.Customer.PaymentMethod = &pm
	}
	data, _ := json.Marshal(normalized)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
