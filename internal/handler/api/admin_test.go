//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockBookings  *commandsmock.MockBookingCommands
	mockInventory *commandsmock.MockInventoryCommands
	mockQueries   *queriesmock.MockBookingQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockInventory = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	bookings := api.NewBookingHandler(s.mockBookings, s.mockQueries)
	inventory := api.NewInventoryHandler(s.mockInventory)

	s.router.GET("/bookings/:id", bookings.Get)
	s.router.GET("/admin/bookings", bookings.List)
	s.router.PATCH("/admin/bookings/:id/status", bookings.UpdateStatus)
	s.router.PUT("/admin/bookings/:id/items/:itemId/room", bookings.AssignRoom)
	s.router.PUT("/admin/pricing", inventory.BulkUpdatePrices)
	s.router.DELETE("/admin/pricing/:roomTypeId/:date", inventory.ResetPriceOverride)
	s.router.PUT("/admin/inventory", inventory.SeedInventory)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// Bookings
// ================================================================================

func (s *AdminHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().AsConfirmed().BuildView()
	roomID := uuid.New()
	number := "305"
	view.Items[0].RoomID = &roomID
	view.Items[0].RoomNumber = &number

	s.Run("success: nights are returned with their assigned rooms", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CONFIRMED", body.Status)
		s.Equal(view.CustomerEmail, body.CustomerEmail)
		s.Require().Len(body.Items, 2)
		s.Equal("2030-01-10", body.Items[0].Date.String())
		s.Equal(&roomID, body.Items[0].RoomID)
		s.Equal(&number, body.Items[0].RoomNumber)
		s.Nil(body.Items[1].RoomID)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, shared.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	s.Run("success: filters and cursor are forwarded", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		status := "CONFIRMED"
		search := "somchai"
		next := &queries.Cursor{After: queries.EncodeAfterCursor(item.CreatedAt, item.ID)}

		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.BookingFilters{Status: &status, Search: &search}, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingListItem{item}, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=confirmed&search=%20somchai%20&cursor=abc&limit=5", nil)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(item.ID, body.Items[0].ID)
		s.Equal(item.RoomTypeName, body.Items[0].RoomTypeName)
		s.Require().NotNil(body.NextCursor)
		s.Equal(next.After, *body.NextCursor)
	})

	s.Run("success: empty page has no cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilters{}, nil, 0).Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: limit above the maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=500", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?cursor=zzz", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String() + "/status"

	s.Run("success", func() {
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), id, "CONFIRMED").
			Return(&commands.StatusChangeResult{BookingID: id, Status: "CONFIRMED", Changed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CONFIRMED"})

		var body resdto.StatusChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.BookingID)
		s.True(body.Changed)
	})

	s.Run("error: missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"invalid status", commands.ErrInvalidStatus, http.StatusBadRequest},
			{"invalid transition", commands.ErrInvalidTransition, http.StatusUnprocessableEntity},
			{"not found", shared.ErrBookingNotFound, http.StatusNotFound},
			{"persistence", shared.ErrPersistenceFailure, http.StatusServiceUnavailable},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "HOLD"})
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestAssignRoom() {
	bookingID, itemID, roomID := uuid.New(), uuid.New(), uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/items/" + itemID.String() + "/room"

	s.Run("success: assign", func() {
		s.mockBookings.EXPECT().AssignRoom(gomock.Any(), bookingID, itemID, &roomID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"room_id": roomID.String()})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: null clears the assignment", func() {
		s.mockBookings.EXPECT().AssignRoom(gomock.Any(), bookingID, itemID, gomock.Nil()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"room_id": nil})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: malformed item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/admin/bookings/"+bookingID.String()+"/items/xyz/room", map[string]any{"room_id": nil})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"room not found", commands.ErrRoomNotFound, http.StatusNotFound},
			{"night not found", commands.ErrLineItemNotFound, http.StatusNotFound},
			{"wrong room type", commands.ErrRoomTypeMismatch, http.StatusUnprocessableEntity},
			{"cancelled booking", commands.ErrBookingNotAssignable, http.StatusUnprocessableEntity},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().AssignRoom(gomock.Any(), bookingID, itemID, gomock.Any()).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"room_id": roomID.String()})
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

// ================================================================================
// Pricing and inventory
// ================================================================================

func (s *AdminHandlerTestSuite) TestBulkUpdatePrices() {
	url := "/admin/pricing"
	roomTypeID := uuid.New()
	reqBody := map[string]any{
		"room_type_id": roomTypeID.String(),
		"from":         "2030-01-07",
		"to":           "2030-01-13",
		"mode":         "increase_percent",
		"value":        "15",
		"weekdays":     []int{5, 6},
	}

	s.Run("success", func() {
		want := commands.BulkPriceInput{
			RoomTypeID: roomTypeID,
			From:       caldate.MustParse("2030-01-07"),
			To:         caldate.MustParse("2030-01-13"),
			Mode:       "increase_percent",
			Value:      decimal.NewFromInt(15),
			Weekdays:   []int{5, 6},
		}
		s.mockInventory.EXPECT().BulkUpdatePrices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.BulkPriceInput) (int, error) {
				s.Equal(want.RoomTypeID, in.RoomTypeID)
				s.Equal(want.From, in.From)
				s.Equal(want.To, in.To)
				s.Equal(want.Mode, in.Mode)
				s.True(want.Value.Equal(in.Value))
				s.Equal(want.Weekdays, in.Weekdays)
				return 2, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var body resdto.DaysUpdatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.DaysUpdated)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for name, mutate := range map[string]func(map[string]any){
			"unknown mode":       testutil.Field("mode", "double"),
			"missing mode":       testutil.Field("mode", nil),
			"weekday too large":  testutil.Field("weekdays", []int{7}),
			"bad from date":      testutil.Field("from", "2030-13-01"),
			"missing room type":  testutil.Field("room_type_id", nil),
			"value not a number": testutil.Field("value", "lots"),
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, mutate))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: unknown room type", func() {
		s.mockInventory.EXPECT().BulkUpdatePrices(gomock.Any(), gomock.Any()).Return(0, shared.ErrRoomTypeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})
}

func (s *AdminHandlerTestSuite) TestResetPriceOverride() {
	roomTypeID := uuid.New()

	s.Run("success", func() {
		s.mockInventory.EXPECT().ResetPriceOverride(gomock.Any(), roomTypeID, caldate.MustParse("2030-01-11")).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/pricing/"+roomTypeID.String()+"/2030-01-11", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: bad date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/pricing/"+roomTypeID.String()+"/tomorrow", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
	})

	s.Run("error: no ledger row", func() {
		s.mockInventory.EXPECT().ResetPriceOverride(gomock.Any(), roomTypeID, gomock.Any()).Return(commands.ErrInventoryDayNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/pricing/"+roomTypeID.String()+"/2030-01-11", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Inventory day not found")
	})
}

func (s *AdminHandlerTestSuite) TestSeedInventory() {
	url := "/admin/inventory"
	roomTypeID := uuid.New()
	reqBody := map[string]any{
		"room_type_id":    roomTypeID.String(),
		"from":            "2030-01-01",
		"to":              "2030-01-31",
		"total_inventory": 8,
	}

	s.Run("success", func() {
		s.mockInventory.EXPECT().SeedInventory(gomock.Any(), commands.SeedInventoryInput{
			RoomTypeID: roomTypeID,
			From:       caldate.MustParse("2030-01-01"),
			To:         caldate.MustParse("2030-01-31"),
			Total:      8,
		}).Return(31, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var body resdto.DaysUpdatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(31, body.DaysUpdated)
	})

	s.Run("success: zero closes the dates", func() {
		s.mockInventory.EXPECT().SeedInventory(gomock.Any(), gomock.Any()).Return(31, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("total_inventory", 0)))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: negative total", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("total_inventory", -2)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: missing total", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("total_inventory", nil)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: total below committed units", func() {
		s.mockInventory.EXPECT().SeedInventory(gomock.Any(), gomock.Any()).Return(0, commands.ErrCapacityBelowCommitted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "below committed")
	})
}
