package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errs.New("invalid booking status")
	ErrInvalidTransition    = errs.New("invalid booking status transition")
	ErrRoomNotFound         = errs.New("room not found")
	ErrRoomTypeMismatch     = errs.New("room does not belong to the booked room type")
	ErrLineItemNotFound     = errs.New("booking line item not found")
	ErrBookingNotAssignable = errs.New("cancelled bookings cannot be assigned rooms")
)

type StatusChangeResult struct {
	BookingID uuid.UUID
	Status    string
	Changed   bool
}

type BookingCommands interface {
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*StatusChangeResult, error)
	// AssignRoom sets or, with a nil roomID, clears the room of one night.
	AssignRoom(ctx context.Context, bookingID, itemID uuid.UUID, roomID *uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*StatusChangeResult, error) {
	next := booking.Status(status)
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	result := &StatusChangeResult{BookingID: bookingID, Status: status}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}

		changed, err := b.TransitionTo(next, uc.clock.Now())
		if err != nil {
			return err
		}
		result.Changed = changed
		if !changed {
			return nil
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	if result.Changed {
		slog.Info("booking status changed", "booking_id", bookingID, "status", status)
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) AssignRoom(ctx context.Context, bookingID, itemID uuid.UUID, roomID *uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if b.Status() == booking.StatusCancelled {
			return ErrBookingNotAssignable
		}

		item, err := b.Item(itemID)
		if err != nil {
			return err
		}

		if roomID != nil {
			snap, err := tx.Reads().RoomByID(ctx, *roomID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrRoomNotFound
				}
				return err
			}
			room := roomtype.ReconstructRoom(snap.ID, snap.RoomTypeID, snap.Number)
			if err := room.CanServe(item.RoomTypeID()); err != nil {
				return err
			}
		}

		return tx.Bookings().AssignRoom(ctx, tx.DB(), bookingID, itemID, roomID)
	})
	if err != nil {
		return mapBookingErr(err)
	}
	return nil
}

func mapBookingErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, shared.ErrBookingNotFound)
	case errs.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	case errs.Is(err, booking.ErrInvalidStatus):
		return errs.Mark(err, ErrInvalidStatus)
	case errs.Is(err, booking.ErrLineItemNotFound):
		return errs.Mark(err, ErrLineItemNotFound)
	case errs.Is(err, roomtype.ErrRoomTypeMismatch):
		return errs.Mark(err, ErrRoomTypeMismatch)
	case errs.Is(err, ErrRoomNotFound), errs.Is(err, ErrBookingNotAssignable):
		return err
	default:
		return errs.Mark(err, shared.ErrPersistenceFailure)
	}
}
