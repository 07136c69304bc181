package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingItemViews(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListBookingItemViewsRow, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.ListBookingsFirstPageRow, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.ListBookingsKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	itemRows, err := r.queries.ListBookingItemViews(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking items", err)
	}

	view, err := toBookingView(row, itemRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking rows", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListFirstPage(ctx context.Context, filters queries.BookingFilters, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, sqlc.ListBookingsFirstPageParams{
		Status:   pgconv.StringPtrToPgtype(filters.Status),
		Search:   pgconv.StringPtrToPgtype(filters.Search),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}

	result := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toBookingListItem(sqlc.ListBookingsKeysetRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking row", err)
		}
		result = append(result, item)
	}
	return result, nil
}

func (r *BookingReadStore) ListKeyset(
	ctx context.Context,
	filters queries.BookingFilters,
	lastCreatedAt time.Time,
	lastID uuid.UUID,
	limit int32,
) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		Status:    pgconv.StringPtrToPgtype(filters.Status),
		Search:    pgconv.StringPtrToPgtype(filters.Search),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}

	result := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toBookingListItem(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking row", err)
		}
		result = append(result, item)
	}
	return result, nil
}

func toBookingView(row sqlc.GetBookingViewRow, itemRows []sqlc.ListBookingItemViewsRow) (*queries.BookingView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]queries.BookingItemView, 0, len(itemRows))
	for _, ir := range itemRows {
		price, err := pgconv.DecimalFromNumeric(ir.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, queries.BookingItemView{
			ID:         ir.ID,
			Date:       pgconv.DateFromPgtype(ir.Date),
			Price:      price,
			RoomID:     pgconv.UUIDPtrFromPgtype(ir.RoomID),
			RoomNumber: pgconv.StringPtrFromPgtype(ir.RoomNumber),
		})
	}

	checkIn := pgconv.DateFromPgtype(row.CheckIn)
	checkOut := pgconv.DateFromPgtype(row.CheckOut)

	return &queries.BookingView{
		ID:            row.ID,
		Status:        row.Status,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: row.CustomerPhone,
		PaymentMethod: pgconv.StringPtrFromPgtype(row.PaymentMethod),
		ExtraGuests:   int(row.ExtraGuests),
		RoomTypeID:    row.RoomTypeID,
		RoomTypeName:  row.RoomTypeName,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        checkIn.DaysUntil(checkOut),
		TotalPrice:    total,
		Items:         items,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toBookingListItem(row sqlc.ListBookingsKeysetRow) (*queries.BookingListItem, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	return &queries.BookingListItem{
		ID:            row.ID,
		Status:        row.Status,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		RoomTypeID:    row.RoomTypeID,
		RoomTypeName:  row.RoomTypeName,
		CheckIn:       pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:      pgconv.DateFromPgtype(row.CheckOut),
		TotalPrice:    total,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
