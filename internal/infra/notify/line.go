package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const lineCircuitName = "line-notify"

var ErrLineRejected = errs.New("line notify rejected the message")

// LineClient posts booking summaries to LINE Notify through a circuit breaker.
type LineClient struct {
	http      *resty.Client
	breaker   *gobreaker.CircuitBreaker
	url       string
	token     string
	hotelName string
}

func NewLineClient(url, token, hotelName string, timeout time.Duration) *LineClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        lineCircuitName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			slog.Warn("circuit breaker state changed",
				"circuit", name,
				"from", from.String(),
				"to", to.String())
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(lineCircuitName).Set(0)

	return &LineClient{
		http:      resty.New().SetTimeout(timeout).SetRetryCount(0),
		breaker:   breaker,
		url:       url,
		token:     token,
		hotelName: hotelName,
	}
}

func (c *LineClient) Name() string { return "line" }

func (c *LineClient) Deliver(ctx context.Context, summary commands.BookingSummary) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(c.token).
			SetFormData(map[string]string{"message": c.Message(summary)}).
			Post(c.url)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, errs.Wrapf(ErrLineRejected, "status %d: %s", resp.StatusCode(), resp.String())
		}
		return nil, nil
	})
	return err
}

// Message renders the summary as the plain-text LINE message.
func (c *LineClient) Message(s commands.BookingSummary) string {
	var b strings.Builder
	b.WriteString("\nNew Booking!\n")
	fmt.Fprintf(&b, "Hotel: %s\n", c.hotelName)
	fmt.Fprintf(&b, "Booking: %s\n", s.BookingID)
	fmt.Fprintf(&b, "Guest: %s\n", s.GuestName)
	fmt.Fprintf(&b, "Room: %s\n", s.RoomTypeName)
	fmt.Fprintf(&b, "Stay: %s - %s (%d nights)\n", s.CheckIn, s.CheckOut, s.Nights)
	fmt.Fprintf(&b, "Total: %s", s.Total.StringFixed(2))
	return b.String()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
