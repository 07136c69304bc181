package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check availability
// @Description Whether every night of [check_in, check_out) has free capacity
// @Tags availability
// @Produce json
// @Param room_type_id query string true "Room type ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var query reqdto.RoomTypeStayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	checkIn, checkOut, err := query.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), query.ID(), checkIn, checkOut)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote a stay
// @Description Per-night prices and total for a room type over [check_in, check_out)
// @Tags availability
// @Produce json
// @Param room_type_id query string true "Room type ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/quote [get]
func (h *AvailabilityHandler) Quote(c *gin.Context) {
	var query reqdto.RoomTypeStayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	checkIn, checkOut, err := query.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), query.ID(), checkIn, checkOut)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Search offers
// @Description Room types available for the whole stay, with their totals
// @Tags availability
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /api/offers [get]
func (h *AvailabilityHandler) SearchOffers(c *gin.Context) {
	var query reqdto.StayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	checkIn, checkOut, err := query.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	views, err := h.q.SearchOffers(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}
