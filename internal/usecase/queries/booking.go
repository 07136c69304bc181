package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

type BookingFilters struct {
	Status *string
	Search *string
}

type BookingViewStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListFirstPage(ctx context.Context, filters BookingFilters, limit int32) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, filters BookingFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingViewStore
}

func NewBookingQueries(store BookingViewStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrBookingNotFound
		}
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if filters.Status != nil && !booking.Status(*filters.Status).IsValid() {
		return nil, nil, ErrInvalidStatusFilter
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, filters, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
