// Package caldate is the domain's calendar date: a civil.Date with the
// conversions the ledger and the API need.
//
// Dates carry no location, so two dates are equal exactly when their year,
// month and day match. Conversions to time.Time use midnight UTC.
package caldate

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid calendar date")

type Date struct {
	d civil.Date
}

func New(year int, month time.Month, day int) Date {
	// normalizes overflow such as February 30
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime keeps the calendar date of t as seen in t's own location.
func FromTime(t time.Time) Date {
	return Date{d: civil.DateOf(t)}
}

// FromCivil accepts only valid dates; the zero civil.Date maps to the zero Date.
func FromCivil(c civil.Date) (Date, error) {
	if c == (civil.Date{}) {
		return Date{}, nil
	}
	if !c.IsValid() {
		return Date{}, ErrInvalidDate
	}
	return Date{d: c}, nil
}

func Parse(s string) (Date, error) {
	c, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{d: c}, nil
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic("caldate: " + s + ": " + err.Error())
	}
	return d
}

func (d Date) Civil() civil.Date { return d.d }

// Time is midnight UTC of d; the zero Date gives the zero time.
func (d Date) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return d.d.In(time.UTC)
}

func (d Date) IsZero() bool           { return d.d == civil.Date{} }
func (d Date) Weekday() time.Weekday  { return d.d.In(time.UTC).Weekday() }
func (d Date) AddDays(n int) Date     { return Date{d: d.d.AddDays(n)} }
func (d Date) Before(other Date) bool { return d.d.Before(other.d) }
func (d Date) After(other Date) bool  { return d.d.After(other.d) }
func (d Date) Equal(other Date) bool  { return d.d == other.d }
func (d Date) String() string         { return d.d.String() }

// DaysUntil returns the number of days from d to other; negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return other.d.DaysSince(d.d)
}

func (d Date) MarshalText() ([]byte, error) {
	return d.d.MarshalText()
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
