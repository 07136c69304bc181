package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingItemParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingItems(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingItems, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	AssignRoomToBookingItem(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignRoomToBookingItemParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create writes the header and every line item; the caller owns the transaction.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	for _, item := range b.Items() {
		if err := r.queries.CreateBookingItem(ctx, tx, converter.LineItemToCreateParams(b, item)); err != nil {
			return infra.WrapRepoErr("failed to create booking item", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	items, err := r.queries.ListBookingItems(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking items", err)
	}

	b, err := converter.BookingFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking rows", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:        b.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) AssignRoom(ctx context.Context, tx sqlc.DBTX, bookingID, itemID uuid.UUID, roomID *uuid.UUID) error {
	n, err := r.queries.AssignRoomToBookingItem(ctx, tx, sqlc.AssignRoomToBookingItemParams{
		RoomID:    pgconv.UUIDPtrToPgtype(roomID),
		ID:        itemID,
		BookingID: bookingID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to assign room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking item not found", nil, infra.KindNotFound)
	}
	return nil
}
