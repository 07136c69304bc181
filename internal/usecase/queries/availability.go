package queries

import (
	"context"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomTypeStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	List(ctx context.Context) ([]*RoomTypeView, error)
}

// InventoryStore reads ledger rows without locking them.
type InventoryStore interface {
	LedgerFor(ctx context.Context, roomTypeID uuid.UUID, stay inventory.StayRange) (inventory.Ledger, error)
	LedgersInRange(ctx context.Context, stay inventory.StayRange) (map[uuid.UUID]inventory.Ledger, error)
}

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut caldate.Date) (*AvailabilityView, error)
	Quote(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut caldate.Date) (*QuoteView, error)
	SearchOffers(ctx context.Context, checkIn, checkOut caldate.Date) ([]*OfferView, error)
}

type availabilityQueriesImpl struct {
	roomTypes RoomTypeStore
	inventory InventoryStore
	maxNights int
}

func NewAvailabilityQueries(roomTypes RoomTypeStore, ledgers InventoryStore, maxNights int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		roomTypes: roomTypes,
		inventory: ledgers,
		maxNights: maxNights,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut caldate.Date) (*AvailabilityView, error) {
	stay, err := q.stay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if _, err := q.roomType(ctx, roomTypeID); err != nil {
		return nil, err
	}

	ledger, err := q.inventory.LedgerFor(ctx, roomTypeID, stay)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}

	return &AvailabilityView{
		RoomTypeID: roomTypeID,
		CheckIn:    stay.CheckIn(),
		CheckOut:   stay.CheckOut(),
		Nights:     stay.Nights(),
		Available:  inventory.IsAvailable(stay, ledger),
	}, nil
}

func (q *availabilityQueriesImpl) Quote(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut caldate.Date) (*QuoteView, error) {
	stay, err := q.stay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	rt, err := q.roomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	ledger, err := q.inventory.LedgerFor(ctx, roomTypeID, stay)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}

	quote := inventory.BuildQuote(stay, rt.BasePrice, ledger)
	nights := make([]NightPriceView, 0, len(quote.Nights))
	for _, n := range quote.Nights {
		nights = append(nights, NightPriceView{Date: n.Date, Price: n.Price})
	}

	return &QuoteView{
		RoomTypeID:   rt.ID,
		RoomTypeName: rt.Name,
		CheckIn:      stay.CheckIn(),
		CheckOut:     stay.CheckOut(),
		Nights:       nights,
		Total:        quote.Total,
		Available:    inventory.IsAvailable(stay, ledger),
	}, nil
}

// SearchOffers lists every room type bookable for the whole stay, priced with
// the same resolver checkout uses.
func (q *availabilityQueriesImpl) SearchOffers(ctx context.Context, checkIn, checkOut caldate.Date) ([]*OfferView, error) {
	stay, err := q.stay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	roomTypes, err := q.roomTypes.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	ledgers, err := q.inventory.LedgersInRange(ctx, stay)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}

	offers := make([]*OfferView, 0, len(roomTypes))
	for _, rt := range roomTypes {
		ledger := ledgers[rt.ID]
		if !inventory.IsAvailable(stay, ledger) {
			continue
		}
		quote := inventory.BuildQuote(stay, rt.BasePrice, ledger)
		offers = append(offers, &OfferView{
			RoomTypeID:   rt.ID,
			RoomTypeName: rt.Name,
			Capacity:     rt.Capacity,
			BasePrice:    rt.BasePrice.Round(inventory.MoneyPlaces),
			Nights:       stay.Nights(),
			TotalPrice:   quote.Total,
		})
	}
	return offers, nil
}

func (q *availabilityQueriesImpl) stay(checkIn, checkOut caldate.Date) (inventory.StayRange, error) {
	stay, err := inventory.NewStayRange(checkIn, checkOut)
	if err != nil {
		return inventory.StayRange{}, errs.Mark(err, shared.ErrInvalidRange)
	}
	if q.maxNights > 0 && stay.Nights() > q.maxNights {
		return inventory.StayRange{}, shared.ErrTooManyNights
	}
	return stay, nil
}

func (q *availabilityQueriesImpl) roomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	rt, err := q.roomTypes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	return rt, nil
}
