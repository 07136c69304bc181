//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/errs"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationCommands
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	reservations := api.NewReservationHandler(s.mockReservations)
	availability := api.NewAvailabilityHandler(s.mockAvailability)

	s.router.POST("/reservations", reservations.CreateReservation)
	s.router.GET("/availability", availability.CheckAvailability)
	s.router.GET("/quote", availability.Quote)
	s.router.GET("/offers", availability.SearchOffers)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()
	created := &commands.ReserveResult{Booking: view}

	bound := []testCaseReservation{
		{name: "extra guests boundary OK (20)", mutate: testutil.Field("customer.extra_guests", 20), expectCode: http.StatusCreated},
		{name: "extra guests invalid (21)", mutate: testutil.Field("customer.extra_guests", 21), expectCode: http.StatusBadRequest},
		{name: "extra guests invalid (-1)", mutate: testutil.Field("customer.extra_guests", -1), expectCode: http.StatusBadRequest},
		{name: "name length OK (255 chars)", mutate: testutil.Field("customer.name", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
		{name: "name length invalid (256 chars)", mutate: testutil.Field("customer.name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReservation{
		{name: "missing field: customer", mutate: testutil.Field("customer", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: room_type_id", mutate: testutil.Field("room_type_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_out", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer.email", mutate: testutil.Field("customer.email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer.phone", mutate: testutil.Field("customer.phone", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseReservation{
		{name: "date not YYYY-MM-DD", mutate: testutil.Field("check_in", "10/01/2030"), expectCode: http.StatusBadRequest},
		{name: "impossible date", mutate: testutil.Field("check_out", "2030-02-30"), expectCode: http.StatusBadRequest},
		{name: "room type not a UUID", mutate: testutil.Field("room_type_id", "deluxe"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReservation{bound, missing, malformed}

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockReservations.EXPECT().Reserve(gomock.Any(), b.BuildReserveInput()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("HOLD", body.Status)
		s.Equal(2, body.Nights)
		s.Len(body.Items, 2)
		s.Equal("2000.00", body.TotalPrice.StringFixed(2))
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: idempotency key is passed through", func() {
		key := uuid.New()
		want := b.BuildReserveInput()
		want.IdempotencyKey = &key
		s.mockReservations.EXPECT().Reserve(gomock.Any(), want).Return(created, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: replay returns 200 with the replay header", func() {
		s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(&commands.ReserveResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": uuid.NewString()})

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 on a malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key header")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range allValidationTestCases {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid range", errs.Mark(errors.New("check-out not after check-in"), shared.ErrInvalidRange), http.StatusBadRequest, "Check-out must be after check-in"},
			{"too many nights", shared.ErrTooManyNights, http.StatusBadRequest, "Date range is too long"},
			{"invalid customer", errs.Mark(errors.New("invalid email"), commands.ErrInvalidCustomer), http.StatusBadRequest, "Invalid customer details"},
			{"room type not found", shared.ErrRoomTypeNotFound, http.StatusNotFound, "Room type not found"},
			{"unavailable", shared.ErrUnavailable, http.StatusConflict, "not available"},
			{"key reused", commands.ErrIdempotencyKeyReused, http.StatusConflict, "different request"},
			{"key in progress", commands.ErrIdempotencyInProgress, http.StatusConflict, "being processed"},
			{"persistence failure", errs.Mark(errors.New("connection reset"), shared.ErrPersistenceFailure), http.StatusServiceUnavailable, "temporarily unavailable"},
			{"unexpected error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// Availability, quote and offers
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	b := builder.NewBookingBuilder()
	url := "/availability?room_type_id=" + b.RoomTypeID.String() + "&check_in=2030-01-10&check_out=2030-01-12"

	s.Run("success", func() {
		s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), b.RoomTypeID, b.CheckIn, b.CheckOut).
			Return(&queries.AvailabilityView{RoomTypeID: b.RoomTypeID, CheckIn: b.CheckIn, CheckOut: b.CheckOut, Nights: 2, Available: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal(2, body.Nights)
		s.Equal("2030-01-10", body.CheckIn.String())
	})

	s.Run("error: invalid query parameters", func() {
		for name, path := range map[string]string{
			"missing room type":  "/availability?check_in=2030-01-10&check_out=2030-01-12",
			"room type not uuid": "/availability?room_type_id=abc&check_in=2030-01-10&check_out=2030-01-12",
			"missing check_out":  "/availability?room_type_id=" + b.RoomTypeID.String() + "&check_in=2030-01-10",
			"bad date":           "/availability?room_type_id=" + b.RoomTypeID.String() + "&check_in=2030-1-10&check_out=2030-01-12",
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: unknown room type", func() {
		s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrRoomTypeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})
}

func (s *ReservationHandlerTestSuite) TestQuote() {
	b := builder.NewBookingBuilder().WithOverride("2030-01-11", "1250")
	url := "/quote?room_type_id=" + b.RoomTypeID.String() + "&check_in=2030-01-10&check_out=2030-01-12"

	s.Run("success: prices are rendered with two decimals", func() {
		items, err := b.BuildItems()
		s.Require().NoError(err)
		view := &queries.QuoteView{
			RoomTypeID:   b.RoomTypeID,
			RoomTypeName: b.RoomTypeName,
			CheckIn:      b.CheckIn,
			CheckOut:     b.CheckOut,
			Available:    true,
		}
		for _, it := range items {
			view.Nights = append(view.Nights, queries.NightPriceView{Date: it.Date(), Price: it.Price()})
			view.Total = view.Total.Add(it.Price())
		}
		s.mockAvailability.EXPECT().Quote(gomock.Any(), b.RoomTypeID, b.CheckIn, b.CheckOut).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Nights, 2)
		s.Equal("1000.00", body.Nights[0].Price)
		s.Equal("1250.00", body.Nights[1].Price)
		s.Equal("2250.00", body.Total)
	})

	s.Run("error: invalid range", func() {
		s.mockAvailability.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrInvalidRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out must be after check-in")
	})
}

func (s *ReservationHandlerTestSuite) TestSearchOffers() {
	s.Run("success", func() {
		rt := builder.NewBookingBuilder().BuildRoomTypeView()
		s.mockAvailability.EXPECT().SearchOffers(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.OfferView{{
			RoomTypeID: rt.ID, RoomTypeName: rt.Name, Capacity: rt.Capacity, BasePrice: rt.BasePrice,
			Nights: 2, TotalPrice: decimal.NewFromInt(2000),
		}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?check_in=2030-01-10&check_out=2030-01-12", nil)

		var body []resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(rt.ID, body[0].RoomTypeID)
		s.Equal("1000.00", body[0].BasePrice)
		s.Equal("2000.00", body[0].TotalPrice)
	})

	s.Run("success: empty result is an empty array", func() {
		s.mockAvailability.EXPECT().SearchOffers(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.OfferView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?check_in=2030-01-10&check_out=2030-01-12", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: missing check_in", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?check_out=2030-01-12", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
