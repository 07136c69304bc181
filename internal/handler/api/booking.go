package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Get booking
// @Description Booking header with its nights in date order
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List bookings
// @Description Newest first, keyset paginated
// @Tags admin
// @Produce json
// @Param status query string false "HOLD, CONFIRMED or CANCELLED"
// @Param search query string false "Guest name or email fragment"
// @Param cursor query string false "next_cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), query.Filters(), query.PageCursor(), query.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	response, err := resdto.FromBookingList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update booking status
// @Description HOLD -> CONFIRMED | CANCELLED, CONFIRMED -> CANCELLED; inventory is not released
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	var req reqdto.UpdateStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}

	result, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}

// @Summary Assign room
// @Description Assigns a physical room to one booked night; null room_id clears it
// @Tags admin
// @Accept json
// @Param id path string true "Booking ID"
// @Param itemId path string true "Booking night ID"
// @Param request body reqdto.AssignRoomRequest true "Room"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/bookings/{id}/items/{itemId}/room [put]
func (h *BookingHandler) AssignRoom(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}
	var req reqdto.AssignRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}

	if err := h.cmds.AssignRoom(c.Request.Context(), bookingID, itemID, req.RoomID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
