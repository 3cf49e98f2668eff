package bootstrap

import (
	"context"
	"log/slog"

	"pickup-rsvp/internal/infra/cache"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewGameCache,
	),
)

type GameCacheResult struct {
	fx.Out

	Reader      queries.GameCache
	Invalidator commands.GameCacheInvalidator
}

// NewGameCache falls back to a no-op cache when REDIS_ADDR is unset. A Redis
// that is down at startup only costs cache hits, so it is not fatal.
func NewGameCache(lc fx.Lifecycle, cfg config.Config) GameCacheResult {
	if !cfg.Redis.Enabled() {
		slog.Info("game cache disabled")
		noop := cache.NoopCache{}
		return GameCacheResult{Reader: noop, Invalidator: noop}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable, game cache will miss", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	c := cache.NewGameCache(client, cfg.Redis.Prefix, cfg.Redis.TTL)
	return GameCacheResult{Reader: c, Invalidator: c}
}
