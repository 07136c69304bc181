package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/usecase/commands"
)

// Channel delivers one booking summary to one destination.
type Channel interface {
	Name() string
	Deliver(ctx context.Context, summary commands.BookingSummary) error
}

// Dispatcher fans a summary out to every channel on detached goroutines. At most
// maxInFlight deliveries run at once; extra summaries are dropped and counted.
// After Shutdown starts, new summaries are dropped as well.
type Dispatcher struct {
	channels []Channel
	timeout  time.Duration
	slots    chan struct{}

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(timeout time.Duration, maxInFlight int, channels ...Channel) *Dispatcher {
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	return &Dispatcher{
		channels: channels,
		timeout:  timeout,
		slots:    make(chan struct{}, maxInFlight),
	}
}

func (d *Dispatcher) BookingCreated(ctx context.Context, summary commands.BookingSummary) {
	// wg.Add must not race with the Wait inside Shutdown
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ch := range d.channels {
		if d.closed {
			metrics.NotificationsTotal.WithLabelValues(ch.Name(), "closed").Inc()
			slog.Warn("notification dropped: dispatcher shut down",
				"channel", ch.Name(),
				"booking_id", summary.BookingID)
			continue
		}

		select {
		case d.slots <- struct{}{}:
		default:
			metrics.NotificationsTotal.WithLabelValues(ch.Name(), "dropped").Inc()
			slog.Warn("notification dropped: too many in flight",
				"channel", ch.Name(),
				"booking_id", summary.BookingID)
			continue
		}

		d.wg.Add(1)
		go d.deliver(context.WithoutCancel(ctx), ch, summary)
	}
}

func (d *Dispatcher) deliver(parent context.Context, ch Channel, summary commands.BookingSummary) {
	defer d.wg.Done()
	defer func() { <-d.slots }()
	defer func() {
		if r := recover(); r != nil {
			metrics.NotificationsTotal.WithLabelValues(ch.Name(), "panic").Inc()
			slog.Error("notification panicked", "channel", ch.Name(), "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(parent, d.timeout)
	defer cancel()

	if err := ch.Deliver(ctx, summary); err != nil {
		metrics.NotificationsTotal.WithLabelValues(ch.Name(), "failed").Inc()
		slog.Error("booking notification failed",
			"channel", ch.Name(),
			"booking_id", summary.BookingID,
			"error", err.Error())
		return
	}
	metrics.NotificationsTotal.WithLabelValues(ch.Name(), "sent").Inc()
}

// Shutdown stops accepting summaries and blocks until in-flight deliveries
// finish or ctx ends. It may be called more than once.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
