//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// unreachable points at a closed port so every Redis call fails fast.
func unreachable(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRoomTypeCache_FallsThroughWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRoomTypeStore(ctrl)
	c := cache.NewRoomTypeCache(store, unreachable(t), time.Minute, 100*time.Millisecond, "test")

	view := builder.NewBookingBuilder().BuildRoomTypeView()
	before := testutil.ToFloat64(metrics.RoomTypeCacheTotal.WithLabelValues("error"))

	t.Run("FindByID", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(2)

		for range 2 {
			got, err := c.FindByID(ctx, view.ID)
			require.NoError(t, err)
			assert.Equal(t, view.ID, got.ID)
		}
	})

	t.Run("List", func(t *testing.T) {
		store.EXPECT().List(gomock.Any()).Return([]*queries.RoomTypeView{view}, nil)

		got, err := c.List(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("store errors are returned as is", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, assert.AnError)

		_, err := c.FindByID(ctx, view.ID)
		assert.ErrorIs(t, err, assert.AnError)
	})

	assert.Greater(t, testutil.ToFloat64(metrics.RoomTypeCacheTotal.WithLabelValues("error")), before)
}

func TestNewRedisClient_FailsWithoutServer(t *testing.T) {
	client, err := cache.NewRedisClient(context.Background(), "127.0.0.1:1", "", 0, 50*time.Millisecond)

	assert.Error(t, err)
	assert.Nil(t, client)
}
