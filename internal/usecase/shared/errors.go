package shared

import (
	"hotel-booking/internal/pkg/errs"
)

// Outcomes shared by the command and query sides. Handlers map these to HTTP statuses.
var (
	ErrInvalidRange       = errs.New("invalid date range")
	ErrTooManyNights      = errs.New("stay exceeds the maximum number of nights")
	ErrRoomTypeNotFound   = errs.New("room type not found")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrUnavailable        = errs.New("room type not available for the requested dates")
	ErrPersistenceFailure = errs.New("persistence failure")
)
