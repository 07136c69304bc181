package inventory

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAdjustmentMode = errors.New("invalid price adjustment mode")
	ErrNegativeAdjustment    = errors.New("adjustment value cannot be negative")
	ErrNoWeekdaysSelected    = errors.New("at least one weekday must be selected")
	ErrInvalidWeekday        = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
)

type AdjustmentMode string

const (
	ModeFixed           AdjustmentMode = "fixed"
	ModeIncreasePercent AdjustmentMode = "increase_percent"
	ModeDecreasePercent AdjustmentMode = "decrease_percent"
	ModeIncreaseFixed   AdjustmentMode = "increase_fixed"
	ModeDecreaseFixed   AdjustmentMode = "decrease_fixed"
)

func (m AdjustmentMode) IsValid() bool {
	switch m {
	case ModeFixed, ModeIncreasePercent, ModeDecreasePercent, ModeIncreaseFixed, ModeDecreaseFixed:
		return true
	default:
		return false
	}
}

var hundred = decimal.NewFromInt(100)

// PriceAdjustment derives a nightly override from a room type's base price.
type PriceAdjustment struct {
	mode  AdjustmentMode
	value decimal.Decimal
}

func NewPriceAdjustment(mode AdjustmentMode, value decimal.Decimal) (PriceAdjustment, error) {
	if !mode.IsValid() {
		return PriceAdjustment{}, ErrInvalidAdjustmentMode
	}
	if value.IsNegative() {
		return PriceAdjustment{}, ErrNegativeAdjustment
	}
	if value.GreaterThan(MaxPrice) {
		return PriceAdjustment{}, ErrPriceTooHigh
	}
	return PriceAdjustment{mode: mode, value: value}, nil
}

func (a PriceAdjustment) Mode() AdjustmentMode   { return a.mode }
func (a PriceAdjustment) Value() decimal.Decimal { return a.value }

// Apply returns the adjusted price rounded to money precision.
func (a PriceAdjustment) Apply(base decimal.Decimal) (decimal.Decimal, error) {
	var price decimal.Decimal
	switch a.mode {
	case ModeFixed:
		price = a.value
	case ModeIncreasePercent:
		price = base.Mul(hundred.Add(a.value)).Div(hundred)
	case ModeDecreasePercent:
		price = base.Mul(hundred.Sub(a.value)).Div(hundred)
	case ModeIncreaseFixed:
		price = base.Add(a.value)
	case ModeDecreaseFixed:
		price = base.Sub(a.value)
	default:
		return decimal.Zero, ErrInvalidAdjustmentMode
	}
	price = price.Round(MoneyPlaces)
	if price.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	if price.GreaterThan(MaxPrice) {
		return decimal.Zero, ErrPriceTooHigh
	}
	return price, nil
}

// WeekdaySet selects which nights of a period an update touches.
type WeekdaySet map[time.Weekday]struct{}

func NewWeekdaySet(days ...time.Weekday) (WeekdaySet, error) {
	if len(days) == 0 {
		return nil, ErrNoWeekdaysSelected
	}
	s := make(WeekdaySet, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return nil, ErrInvalidWeekday
		}
		s[d] = struct{}{}
	}
	return s, nil
}

func AllWeekdays() WeekdaySet {
	s, _ := NewWeekdaySet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)
	return s
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	_, ok := s[d]
	return ok
}
