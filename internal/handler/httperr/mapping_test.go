//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid range", shared.ErrInvalidRange, http.StatusBadRequest},
		{"wrapped invalid cursor", errs.Wrap(queries.ErrInvalidCursor, "decode"), http.StatusBadRequest},
		{"room type not found", shared.ErrRoomTypeNotFound, http.StatusNotFound},
		{"line item not found", commands.ErrLineItemNotFound, http.StatusNotFound},
		{"unavailable", shared.ErrUnavailable, http.StatusConflict},
		{"key reused", commands.ErrIdempotencyKeyReused, http.StatusConflict},
		{"invalid transition", commands.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"persistence failure", errs.Wrap(shared.ErrPersistenceFailure, "begin tx"), http.StatusServiceUnavailable},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Status(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}

	t.Run("first mark wins", func(t *testing.T) {
		// a lock timeout surfaces as unavailable even though the tx layer also marked it
		err := errs.Mark(errs.Mark(errs.New("lock timeout"), shared.ErrPersistenceFailure), shared.ErrUnavailable)

		status, _ := httperr.Status(err)

		assert.Equal(t, http.StatusConflict, status)
	})
}

func TestAbortWithUseCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.AbortWithUseCaseError(c, errs.Wrap(shared.ErrBookingNotFound, "find"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
	resp, ok := c.Errors[0].Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, resp.Status)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Booking not found", body["error"]["message"])
}

func TestAbortWithError_PanicsOnNil(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
	})
}

func TestAbortWithBindError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failures list the fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"total_inventory":-1}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var req struct {
			RoomTypeID     string `json:"room_type_id" binding:"required"`
			TotalInventory int    `json:"total_inventory" binding:"min=0"`
		}
		httperr.AbortWithBindError(c, c.ShouldBindJSON(&req))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Detail []httperr.FieldError `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Detail, 2)
		assert.Equal(t, "required", body.Detail[0].Rule)
		assert.Equal(t, "min", body.Detail[1].Rule)
	})

	t.Run("malformed JSON has no detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		c.Request.Header.Set("Content-Type", "application/json")

		var req struct{}
		httperr.AbortWithBindError(c, c.ShouldBindJSON(&req))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotContains(t, w.Body.String(), "detail")
	})
}
