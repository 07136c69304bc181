package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRoomTypeStore,
	),
)

// NewRedisClient returns nil when Redis is not configured or unreachable; the
// room type store then reads the database directly.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled() {
		return nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.DialTimeout)
	if err != nil {
		logger.Warn("redis unavailable, room type cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewRoomTypeStore(store *readstore.RoomTypeReadStore, client *redis.Client, cfg config.Config) queries.RoomTypeStore {
	if client == nil {
		return store
	}
	return cache.NewRoomTypeCache(store, client, cfg.Redis.RoomTypeTTL, cfg.Redis.OpTimeout, cfg.Redis.KeyNamespace)
}
