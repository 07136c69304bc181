package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RoomTypeCache decorates a RoomTypeStore with a Redis read-through cache.
// Redis failures fall through to the wrapped store.
type RoomTypeCache struct {
	next      queries.RoomTypeStore
	client    redis.UniversalClient
	ttl       time.Duration
	opTimeout time.Duration
	namespace string
}

func NewRoomTypeCache(next queries.RoomTypeStore, client redis.UniversalClient, ttl, opTimeout time.Duration, namespace string) *RoomTypeCache {
	return &RoomTypeCache{
		next:      next,
		client:    client,
		ttl:       ttl,
		opTimeout: opTimeout,
		namespace: namespace,
	}
}

func (c *RoomTypeCache) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	key := c.key("room_type", id.String())

	var view queries.RoomTypeView
	if c.get(ctx, key, &view) {
		return &view, nil
	}

	found, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, found)
	return found, nil
}

func (c *RoomTypeCache) List(ctx context.Context) ([]*queries.RoomTypeView, error) {
	key := c.key("room_types", "all")

	var views []*queries.RoomTypeView
	if c.get(ctx, key, &views) {
		return views, nil
	}

	found, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, found)
	return found, nil
}

func (c *RoomTypeCache) key(parts ...string) string {
	k := c.namespace
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

func (c *RoomTypeCache) get(ctx context.Context, key string, dst any) bool {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RoomTypeCacheTotal.WithLabelValues("miss").Inc()
		} else {
			metrics.RoomTypeCacheTotal.WithLabelValues("error").Inc()
			slog.Warn("room type cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.RoomTypeCacheTotal.WithLabelValues("error").Inc()
		slog.Warn("room type cache entry corrupt", "key", key, "error", err.Error())
		return false
	}
	metrics.RoomTypeCacheTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *RoomTypeCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("room type cache write failed", "key", key, "error", err.Error())
	}
}

// NewRedisClient connects and pings; a nil client with an error means caching stays off.
func NewRedisClient(ctx context.Context, addr, password string, db int, dialTimeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
