package request

import (
	"strings"

	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AssignRoomRequest with a null room_id clears the assignment.
type AssignRoomRequest struct {
	RoomID *uuid.UUID `json:"room_id"`
}

type BulkPriceRequest struct {
	RoomTypeID uuid.UUID       `json:"room_type_id" binding:"required"`
	From       string          `json:"from" binding:"required"`
	To         string          `json:"to" binding:"required"`
	Mode       string          `json:"mode" binding:"required,oneof=fixed increase_percent decrease_percent increase_fixed decrease_fixed"`
	Value      decimal.Decimal `json:"value"`
	Weekdays   []int           `json:"weekdays" binding:"omitempty,dive,min=0,max=6"`
}

func (r BulkPriceRequest) ToInput() (commands.BulkPriceInput, error) {
	from, to, err := parsePeriod(r.From, r.To)
	if err != nil {
		return commands.BulkPriceInput{}, err
	}
	return commands.BulkPriceInput{
		RoomTypeID: r.RoomTypeID,
		From:       from,
		To:         to,
		Mode:       r.Mode,
		Value:      r.Value,
		Weekdays:   r.Weekdays,
	}, nil
}

type SeedInventoryRequest struct {
	RoomTypeID     uuid.UUID `json:"room_type_id" binding:"required"`
	From           string    `json:"from" binding:"required"`
	To             string    `json:"to" binding:"required"`
	TotalInventory *int      `json:"total_inventory" binding:"required,min=0"`
}

func (r SeedInventoryRequest) ToInput() (commands.SeedInventoryInput, error) {
	from, to, err := parsePeriod(r.From, r.To)
	if err != nil {
		return commands.SeedInventoryInput{}, err
	}
	return commands.SeedInventoryInput{
		RoomTypeID: r.RoomTypeID,
		From:       from,
		To:         to,
		Total:      *r.TotalInventory,
	}, nil
}

type BookingListQuery struct {
	Status string `form:"status"`
	Search string `form:"search" binding:"max=100"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"min=0,max=200"`
}

func (q BookingListQuery) Filters() queries.BookingFilters {
	var f queries.BookingFilters
	if s := strings.ToUpper(strings.TrimSpace(q.Status)); s != "" {
		f.Status = &s
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		f.Search = &s
	}
	return f
}

func (q BookingListQuery) PageCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

func parsePeriod(fromStr, toStr string) (caldate.Date, caldate.Date, error) {
	from, err := caldate.Parse(fromStr)
	if err != nil {
		return caldate.Date{}, caldate.Date{}, err
	}
	to, err := caldate.Parse(toStr)
	if err != nil {
		return caldate.Date{}, caldate.Date{}, err
	}
	return from, to, nil
}
