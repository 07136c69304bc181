package inventory

import (
	"hotel-booking/internal/pkg/caldate"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept for every amount.
const MoneyPlaces = 2

// MaxPrice is the largest amount a numeric(12,2) price column holds.
var MaxPrice = decimal.RequireFromString("9999999999.99")

// ResolveNightlyPrice is the single precedence rule for a night's price:
// the ledger override when set, otherwise the room type's base price.
func ResolveNightlyPrice(override *decimal.Decimal, base decimal.Decimal) decimal.Decimal {
	if override != nil {
		return override.Round(MoneyPlaces)
	}
	return base.Round(MoneyPlaces)
}

type NightPrice struct {
	Date  caldate.Date
	Price decimal.Decimal
}

type Quote struct {
	Stay   StayRange
	Nights []NightPrice
	Total  decimal.Decimal
}

// BuildQuote prices every night of the stay. Nights without a ledger row are
// priced at base; availability is a separate question.
func BuildQuote(stay StayRange, base decimal.Decimal, ledger Ledger) Quote {
	dates := stay.Dates()
	nights := make([]NightPrice, 0, len(dates))
	total := decimal.Zero
	for _, date := range dates {
		var override *decimal.Decimal
		if day, ok := ledger[date]; ok {
			override = day.PriceOverride()
		}
		price := ResolveNightlyPrice(override, base)
		nights = append(nights, NightPrice{Date: date, Price: price})
		total = total.Add(price)
	}
	return Quote{Stay: stay, Nights: nights, Total: total.Round(MoneyPlaces)}
}
