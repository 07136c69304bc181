package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey   = "Idempotency-Key"
	headerIdempotentReplay = "Idempotent-Replayed"
)

var errInvalidIdempotencyKey = errors.New("invalid idempotency key format")

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Reserve a stay
// @Description Atomically books every night of [check_in, check_out) and creates a HOLD booking
// @Tags reservations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID; replays the stored booking when repeated"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}
	input, err := req.ToInput(idempotencyKey)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), input)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	response, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(headerIdempotentReplay, "true")
		status = http.StatusOK
	}
	c.JSON(status, response)
}

// getIdempotencyKey returns nil when the optional header is absent.
func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader(headerIdempotencyKey)
	if keyStr == "" {
		return nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, errInvalidIdempotencyKey
	}
	return &key, nil
}
