//go:build e2e

package availability_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL = "/api/availability?room_type_id=%s&check_in=%s&check_out=%s"
	quoteURL        = "/api/quote?room_type_id=%s&check_in=%s&check_out=%s"
	offersURL       = "/api/offers?check_in=%s&check_out=%s"
)

type AvailabilitySuite struct {
	e2e.SharedSuite
}

func (s *AvailabilitySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAvailabilitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AvailabilitySuite))
}

// =============================================================================
// TestCheckAvailability - 空室確認
// =============================================================================

func (s *AvailabilitySuite) TestCheckAvailability() {
	s.Run("Normal case: free capacity on every night", func() {
		t := s.T()
		rtID := dbtest.CreateRoomType(t, s.DB, "Deluxe Double", 2, "1000")
		dbtest.SeedInventory(t, s.DB, rtID, "2030-01-10", "2030-01-12", 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, rtID, "2030-01-10", "2030-01-12"), nil)

		var body response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.True(t, body.Available)
		require.Equal(t, 2, body.Nights)
	})

	s.Run("Normal case: one booked-out night makes the stay unavailable", func() {
		t := s.T()
		rtID := dbtest.CreateRoomType(t, s.DB, "Deluxe Double", 2, "1000")
		dbtest.SeedInventory(t, s.DB, rtID, "2030-01-10", "2030-01-12", 1)

		reserve := builder.NewBookingBuilder().WithRoomTypeID(rtID).WithStay("2030-01-11", "2030-01-12").BuildCreateRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", reserve)
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, rtID, "2030-01-10", "2030-01-12"), nil)

		var body response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.False(t, body.Available)
	})

	s.Run("Normal case: a missing ledger row makes the stay unavailable", func() {
		t := s.T()
		rtID := dbtest.CreateRoomType(t, s.DB, "Twin", 2, "800")
		dbtest.SeedInventory(t, s.DB, rtID, "2030-01-10", "2030-01-11", 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, rtID, "2030-01-10", "2030-01-12"), nil)

		var body response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.False(t, body.Available)
	})

	s.Run("Error case: unknown room type and bad ranges", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, uuid.New(), "2030-01-10", "2030-01-12"), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room type not found")

		rtID := dbtest.CreateRoomType(t, s.DB, "Single", 1, "500")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, rtID, "2030-01-12", "2030-01-10"), nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestQuoteAndOffers - 料金見積と検索
// =============================================================================

func (s *AvailabilitySuite) TestQuoteAndOffers() {
	s.Run("Normal case: quote matches what checkout charges", func() {
		t := s.T()
		rtID := dbtest.CreateRoomType(t, s.DB, "Deluxe Double", 2, "1000")
		dbtest.SeedInventory(t, s.DB, rtID, "2030-01-10", "2030-01-13", 2)
		dbtest.SetPriceOverride(t, s.DB, rtID, "2030-01-12", "1799.99")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(quoteURL, rtID, "2030-01-10", "2030-01-13"), nil)
		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Equal(t, "3799.99", quote.Total)
		require.Len(t, quote.Nights, 3)
		require.Equal(t, "1799.99", quote.Nights[2].Price)

		reserve := builder.NewBookingBuilder().WithRoomTypeID(rtID).WithStay("2030-01-10", "2030-01-13").BuildCreateRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", reserve)
		require.Equal(t, http.StatusCreated, rw.Code)
		var booking response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &booking))
		require.Equal(t, quote.Total, booking.TotalPrice.StringFixed(2))
	})

	s.Run("Normal case: offers list only fully available room types", func() {
		t := s.T()
		open := dbtest.CreateRoomType(t, s.DB, "Garden View", 2, "1200")
		dbtest.SeedInventory(t, s.DB, open, "2030-05-01", "2030-05-04", 2)
		closed := dbtest.CreateRoomType(t, s.DB, "Sea View", 2, "2500")
		dbtest.SeedInventory(t, s.DB, closed, "2030-05-01", "2030-05-03", 2)
		dbtest.SeedInventory(t, s.DB, closed, "2030-05-03", "2030-05-04", 0)
		_ = dbtest.CreateRoomType(t, s.DB, "Unseeded", 2, "900")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(offersURL, "2030-05-01", "2030-05-04"), nil)

		var offers []response.OfferResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &offers)
		require.Len(t, offers, 1)
		require.Equal(t, open, offers[0].RoomTypeID)
		require.Equal(t, "3600.00", offers[0].TotalPrice)
		require.Equal(t, 3, offers[0].Nights)
	})
}
