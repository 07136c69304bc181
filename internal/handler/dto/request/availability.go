package request

import (
	"hotel-booking/internal/pkg/caldate"

	"github.com/google/uuid"
)

type StayQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

// Dates parses both ends as YYYY-MM-DD calendar dates.
func (q StayQuery) Dates() (caldate.Date, caldate.Date, error) {
	checkIn, err := caldate.Parse(q.CheckIn)
	if err != nil {
		return caldate.Date{}, caldate.Date{}, err
	}
	checkOut, err := caldate.Parse(q.CheckOut)
	if err != nil {
		return caldate.Date{}, caldate.Date{}, err
	}
	return checkIn, checkOut, nil
}

type RoomTypeStayQuery struct {
	StayQuery
	RoomTypeID string `form:"room_type_id" binding:"required,uuid"`
}

func (q RoomTypeStayQuery) ID() uuid.UUID {
	return uuid.MustParse(q.RoomTypeID)
}
