package response

import (
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AvailabilityResponse struct {
	RoomTypeID uuid.UUID    `json:"room_type_id"`
	CheckIn    caldate.Date `json:"check_in"`
	CheckOut   caldate.Date `json:"check_out"`
	Nights     int          `json:"nights"`
	Available  bool         `json:"available"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomTypeID: v.RoomTypeID,
		CheckIn:    v.CheckIn,
		CheckOut:   v.CheckOut,
		Nights:     v.Nights,
		Available:  v.Available,
	}
}

type NightPriceResponse struct {
	Date  caldate.Date `json:"date"`
	Price string       `json:"price"`
}

type QuoteResponse struct {
	RoomTypeID   uuid.UUID            `json:"room_type_id"`
	RoomTypeName string               `json:"room_type_name"`
	CheckIn      caldate.Date         `json:"check_in"`
	CheckOut     caldate.Date         `json:"check_out"`
	Nights       []NightPriceResponse `json:"nights"`
	Total        string               `json:"total"`
	Available    bool                 `json:"available"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	nights := make([]NightPriceResponse, len(v.Nights))
	for i, n := range v.Nights {
		nights[i] = NightPriceResponse{Date: n.Date, Price: money(n.Price)}
	}
	return &QuoteResponse{
		RoomTypeID:   v.RoomTypeID,
		RoomTypeName: v.RoomTypeName,
		CheckIn:      v.CheckIn,
		CheckOut:     v.CheckOut,
		Nights:       nights,
		Total:        money(v.Total),
		Available:    v.Available,
	}
}

type OfferResponse struct {
	RoomTypeID   uuid.UUID `json:"room_type_id"`
	RoomTypeName string    `json:"room_type_name"`
	Capacity     int       `json:"capacity"`
	BasePrice    string    `json:"base_price"`
	Nights       int       `json:"nights"`
	TotalPrice   string    `json:"total_price"`
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	res := make([]*OfferResponse, len(views))
	for i, v := range views {
		res[i] = &OfferResponse{
			RoomTypeID:   v.RoomTypeID,
			RoomTypeName: v.RoomTypeName,
			Capacity:     v.Capacity,
			BasePrice:    money(v.BasePrice),
			Nights:       v.Nights,
			TotalPrice:   money(v.TotalPrice),
		}
	}
	return res
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
