package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
}

func NewInventoryHandler(cmds commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{cmds: cmds}
}

// @Summary Bulk update prices
// @Description Sets the nightly override over an inclusive period, optionally filtered by weekday
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.BulkPriceRequest true "Pricing request"
// @Success 200 {object} resdto.DaysUpdatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/pricing [put]
func (h *InventoryHandler) BulkUpdatePrices(c *gin.Context) {
	var req reqdto.BulkPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	updated, err := h.cmds.BulkUpdatePrices(c.Request.Context(), input)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DaysUpdatedResponse{DaysUpdated: updated})
}

// @Summary Reset price override
// @Description The night falls back to the room type base price
// @Tags admin
// @Param roomTypeId path string true "Room type ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/pricing/{roomTypeId}/{date} [delete]
func (h *InventoryHandler) ResetPriceOverride(c *gin.Context) {
	roomTypeID, err := uuid.Parse(c.Param("roomTypeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room type ID format", nil)
		return
	}
	date, err := caldate.Parse(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	if err := h.cmds.ResetPriceOverride(c.Request.Context(), roomTypeID, date); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Seed inventory
// @Description Upserts total inventory for every day of an inclusive period
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.SeedInventoryRequest true "Seed request"
// @Success 200 {object} resdto.DaysUpdatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/inventory [put]
func (h *InventoryHandler) SeedInventory(c *gin.Context) {
	var req reqdto.SeedInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	updated, err := h.cmds.SeedInventory(c.Request.Context(), input)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DaysUpdatedResponse{DaysUpdated: updated})
}
