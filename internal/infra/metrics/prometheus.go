package metrics

import (
	"strconv"
	"time"

	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_total",
			Help: "Reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	ReservationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reservation_duration_seconds",
			Help:    "End-to-end reservation latency by outcome",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	InventoryLockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_lock_wait_seconds",
			Help:    "Time spent acquiring inventory row locks",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_notifications_total",
			Help: "Booking notification deliveries by channel and result",
		},
		[]string{"channel", "result"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)

	RoomTypeCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_type_cache_total",
			Help: "Room type cache lookups by result",
		},
		[]string{"result"},
	)
)

// ReservationRecorder feeds reservation outcomes into the collectors above.
type ReservationRecorder struct{}

func NewReservationRecorder() *ReservationRecorder {
	return &ReservationRecorder{}
}

func (ReservationRecorder) ReservationFinished(outcome commands.ReservationOutcome, elapsed time.Duration) {
	ReservationsTotal.WithLabelValues(string(outcome)).Inc()
	ReservationDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

func (ReservationRecorder) LockAcquired(wait time.Duration) {
	InventoryLockWait.Observe(wait.Seconds())
}

// PrometheusMiddleware records request counts and latency per route template.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
