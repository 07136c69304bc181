package httperr

import (
	"net/http"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target error
	status int
	msg    string
}

// Order matters: a marked error may carry several sentinels and the first match wins.
var mappings = []mapping{
	{shared.ErrInvalidRange, http.StatusBadRequest, "Check-out must be after check-in"},
	{shared.ErrTooManyNights, http.StatusBadRequest, "Date range is too long"},
	{commands.ErrInvalidCustomer, http.StatusBadRequest, "Invalid customer details"},
	{commands.ErrInvalidPricing, http.StatusBadRequest, "Invalid pricing request"},
	{commands.ErrInvalidInventoryTotal, http.StatusBadRequest, "Invalid inventory total"},
	{commands.ErrInvalidStatus, http.StatusBadRequest, "Invalid booking status"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidStatusFilter, http.StatusBadRequest, "Invalid status filter"},
	{shared.ErrRoomTypeNotFound, http.StatusNotFound, "Room type not found"},
	{shared.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{commands.ErrLineItemNotFound, http.StatusNotFound, "Booking night not found"},
	{commands.ErrInventoryDayNotFound, http.StatusNotFound, "Inventory day not found"},
	{shared.ErrUnavailable, http.StatusConflict, "Room type is not available for the requested dates"},
	{commands.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key was used with a different request"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Request with this idempotency key is being processed"},
	{commands.ErrCapacityBelowCommitted, http.StatusConflict, "Total inventory would fall below committed bookings"},
	{commands.ErrInvalidTransition, http.StatusUnprocessableEntity, "Status transition not allowed"},
	{commands.ErrRoomTypeMismatch, http.StatusUnprocessableEntity, "Room does not belong to the booked room type"},
	{commands.ErrBookingNotAssignable, http.StatusUnprocessableEntity, "Cancelled bookings cannot be assigned rooms"},
	{shared.ErrPersistenceFailure, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

// Status resolves the HTTP status and public message for a use case error.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Status(err)
	AbortWithError(c, status, err, msg, nil)
}
