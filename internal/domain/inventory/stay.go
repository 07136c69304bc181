package inventory

import (
	"errors"

	"hotel-booking/internal/pkg/caldate"
)

var ErrInvalidRange = errors.New("check-out must be after check-in")

// StayRange is the half-open night interval [checkIn, checkOut).
type StayRange struct {
	checkIn  caldate.Date
	checkOut caldate.Date
}

func NewStayRange(checkIn, checkOut caldate.Date) (StayRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

// InclusivePeriod covers every date from first through last, as admin tools
// address whole calendar days rather than nights of a stay.
func InclusivePeriod(first, last caldate.Date) (StayRange, error) {
	if first.IsZero() || last.IsZero() || last.Before(first) {
		return StayRange{}, ErrInvalidRange
	}
	return StayRange{checkIn: first, checkOut: last.AddDays(1)}, nil
}

func (r StayRange) CheckIn() caldate.Date  { return r.checkIn }
func (r StayRange) CheckOut() caldate.Date { return r.checkOut }
func (r StayRange) Nights() int            { return r.checkIn.DaysUntil(r.checkOut) }

// Dates lists every night of the stay in ascending order.
func (r StayRange) Dates() []caldate.Date {
	dates := make([]caldate.Date, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

func (r StayRange) Contains(d caldate.Date) bool {
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

func (r StayRange) String() string {
	return "[" + r.checkIn.String() + ", " + r.checkOut.String() + ")"
}
