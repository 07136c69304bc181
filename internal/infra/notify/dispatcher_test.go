//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	name    string
	err     error
	panics  bool
	release chan struct{}

	mu        sync.Mutex
	delivered []commands.BookingSummary
	deadlines []bool
}

func (f *fakeChannel) Name() string { return f.name }

func (f *fakeChannel) Deliver(ctx context.Context, s commands.BookingSummary) error {
	if f.release != nil {
		<-f.release
	}
	if f.panics {
		panic("boom")
	}
	_, hasDeadline := ctx.Deadline()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delivered = append(f.delivered, s)
	f.deadlines = append(f.deadlines, hasDeadline && ctx.Err() == nil)
	return f.err
}

func (f *fakeChannel) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.delivered)
}

func summary() commands.BookingSummary {
	return commands.BookingSummary{
		BookingID:    uuid.New(),
		GuestName:    "Somchai Jaidee",
		GuestEmail:   "guest@example.com",
		RoomTypeID:   uuid.New(),
		RoomTypeName: "Deluxe Double",
		CheckIn:      caldate.MustParse("2030-01-10"),
		CheckOut:     caldate.MustParse("2030-01-12"),
		Nights:       2,
		Total:        decimal.NewFromInt(2000),
		CreatedAt:    time.Date(2029, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func waitDone(t *testing.T, d *notify.Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))
}

func TestDispatcher_FansOutToEveryChannel(t *testing.T) {
	a := &fakeChannel{name: "fanout-a"}
	b := &fakeChannel{name: "fanout-b"}
	d := notify.NewDispatcher(time.Second, 4, a, b)
	s := summary()

	d.BookingCreated(context.Background(), s)
	waitDone(t, d)

	require.Equal(t, 1, a.count())
	require.Equal(t, 1, b.count())
	assert.Equal(t, s.BookingID, a.delivered[0].BookingID)
	assert.True(t, a.deadlines[0], "delivery should run under its own timeout")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("fanout-a", "sent")))
}

func TestDispatcher_SurvivesCallerCancellation(t *testing.T) {
	ch := &fakeChannel{name: "detached", release: make(chan struct{})}
	d := notify.NewDispatcher(time.Second, 1, ch)

	ctx, cancel := context.WithCancel(context.Background())
	d.BookingCreated(ctx, summary())
	cancel()
	close(ch.release)
	waitDone(t, d)

	require.Equal(t, 1, ch.count())
	assert.True(t, ch.deadlines[0])
}

func TestDispatcher_FailuresAreCountedNotReturned(t *testing.T) {
	failing := &fakeChannel{name: "failing", err: errors.New("smtp down")}
	panicking := &fakeChannel{name: "panicking", panics: true}
	d := notify.NewDispatcher(time.Second, 4, failing, panicking)

	d.BookingCreated(context.Background(), summary())
	waitDone(t, d)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("failing", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("panicking", "panic")))
}

func TestDispatcher_DropsWhenSaturated(t *testing.T) {
	slow := &fakeChannel{name: "saturated", release: make(chan struct{})}
	d := notify.NewDispatcher(time.Second, 1, slow)

	d.BookingCreated(context.Background(), summary())
	d.BookingCreated(context.Background(), summary())
	close(slow.release)
	waitDone(t, d)

	assert.Equal(t, 1, slow.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("saturated", "dropped")))
}

func TestDispatcher_ShutdownHonoursContext(t *testing.T) {
	stuck := &fakeChannel{name: "stuck", release: make(chan struct{})}
	d := notify.NewDispatcher(time.Second, 1, stuck)
	d.BookingCreated(context.Background(), summary())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)

	close(stuck.release)
	waitDone(t, d)
}

func TestDispatcher_RejectsSummariesAfterShutdown(t *testing.T) {
	late := &fakeChannel{name: "late"}
	d := notify.NewDispatcher(time.Second, 4, late)
	waitDone(t, d)

	d.BookingCreated(context.Background(), summary())
	waitDone(t, d)

	assert.Zero(t, late.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("late", "closed")))
}

func TestDispatcher_ConcurrentShutdownAndDelivery(t *testing.T) {
	ch := &fakeChannel{name: "racing"}
	d := notify.NewDispatcher(time.Second, 64, ch)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.BookingCreated(context.Background(), summary())
		}()
	}
	waitDone(t, d)
	wg.Wait()
	waitDone(t, d)

	sent := testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("racing", "sent"))
	closed := testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("racing", "closed"))
	assert.Equal(t, 32.0, sent+closed)
	assert.Equal(t, int(sent), ch.count())
}
