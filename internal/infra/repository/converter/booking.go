package converter

import (
	"fmt"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	c := b.Customer()

	params := sqlc.CreateBookingParams{
		ID:            b.ID(),
		CustomerName:  c.Name(),
		CustomerEmail: c.Email(),
		CustomerPhone: c.Phone(),
		ExtraGuests:   int32(c.ExtraGuests()), // #nosec G115 -- validated non-negative, far below int32 range
		RoomTypeID:    b.RoomTypeID(),
		CheckIn:       pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:      pgconv.DateToPgtype(b.Stay().CheckOut()),
		TotalPrice:    pgconv.DecimalToNumeric(b.Total()),
		Status:        b.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
	}

	if pm := c.PaymentMethod(); pm != "" {
		params.PaymentMethod = pgtype.Text{String: pm, Valid: true}
	}

	return params
}

func LineItemToCreateParams(b *booking.Booking, item booking.LineItem) sqlc.CreateBookingItemParams {
	return sqlc.CreateBookingItemParams{
		ID:         item.ID(),
		BookingID:  b.ID(),
		RoomTypeID: item.RoomTypeID(),
		Date:       pgconv.DateToPgtype(item.Date()),
		Price:      pgconv.DecimalToNumeric(item.Price()),
		RoomID:     pgconv.UUIDPtrToPgtype(item.RoomID()),
	}
}

func BookingFromRows(row sqlc.Bookings, itemRows []sqlc.BookingItems) (*booking.Booking, error) {
	stay, err := inventory.NewStayRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}

	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("booking %s total: %w", row.ID, err)
	}

	items := make([]booking.LineItem, 0, len(itemRows))
	for _, ir := range itemRows {
		price, err := pgconv.DecimalFromNumeric(ir.Price)
		if err != nil {
			return nil, fmt.Errorf("booking item %s price: %w", ir.ID, err)
		}
		items = append(items, booking.ReconstructLineItem(
			ir.ID,
			ir.RoomTypeID,
			pgconv.DateFromPgtype(ir.Date),
			price,
			pgconv.UUIDPtrFromPgtype(ir.RoomID),
		))
	}

	customer := booking.ReconstructCustomer(
		row.CustomerName,
		row.CustomerEmail,
		row.CustomerPhone,
		row.PaymentMethod.String,
		int(row.ExtraGuests),
	)

	return booking.ReconstructBooking(
		row.ID,
		customer,
		row.RoomTypeID,
		stay,
		items,
		total,
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
