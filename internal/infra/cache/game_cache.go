package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"pickup-rsvp/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const upcomingKey = "games:upcoming"

// GameCache keeps catalog views in Redis for a short TTL. Every error is
// logged and swallowed: the cache is never the source of truth.
//
// Each entry is keyed by a generation counter that Invalidate bumps. A reader
// notes the generation on a miss and fills under it, so a view loaded before
// an invalidation lands on a key nobody reads any more.
type GameCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewGameCache(client redis.Cmdable, prefix string, ttl time.Duration) *GameCache {
	return &GameCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *GameCache) GetGame(ctx context.Context, gameID string) (*queries.GameView, queries.CacheStamp, bool) {
	var view queries.GameView
	stamp, ok := c.get(ctx, c.gameKey(gameID), &view)
	if !ok {
		return nil, stamp, false
	}
	return &view, stamp, true
}

func (c *GameCache) SetGame(ctx context.Context, stamp queries.CacheStamp, view *queries.GameView) {
	c.set(ctx, c.gameKey(view.GameID), stamp, view)
}

func (c *GameCache) GetUpcoming(ctx context.Context) ([]*queries.GameView, queries.CacheStamp, bool) {
	var views []*queries.GameView
	stamp, ok := c.get(ctx, c.key(upcomingKey), &views)
	if !ok {
		return nil, stamp, false
	}
	return views, stamp, true
}

func (c *GameCache) SetUpcoming(ctx context.Context, stamp queries.CacheStamp, views []*queries.GameView) {
	c.set(ctx, c.key(upcomingKey), stamp, views)
}

// Invalidate retires the current generation of the given games and of the
// upcoming list, which embeds them. Retired entries expire on their own.
func (c *GameCache) Invalidate(ctx context.Context, gameIDs ...string) {
	keys := make([]string, 0, len(gameIDs)+1)
	keys = append(keys, c.key(upcomingKey))
	for _, id := range gameIDs {
		keys = append(keys, c.gameKey(id))
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Incr(ctx, generationKey(k))
		}
		return nil
	})
	if err != nil {
		slog.Warn("game cache invalidation failed", "keys", len(keys), "error", err.Error())
	}
}

func (c *GameCache) generation(ctx context.Context, key string) (queries.CacheStamp, error) {
	gen, err := c.client.Get(ctx, generationKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return queries.CacheStamp(gen), err
}

func (c *GameCache) get(ctx context.Context, key string, dst any) (queries.CacheStamp, bool) {
	stamp, err := c.generation(ctx, key)
	if err != nil {
		slog.Warn("game cache read failed", "key", key, "error", err.Error())
		return queries.NoCacheStamp, false
	}
	raw, err := c.client.Get(ctx, entryKey(key, stamp)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("game cache read failed", "key", key, "error", err.Error())
		}
		return stamp, false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("game cache entry unreadable", "key", key, "error", err.Error())
		return stamp, false
	}
	return stamp, true
}

func (c *GameCache) set(ctx context.Context, key string, stamp queries.CacheStamp, value any) {
	if stamp == queries.NoCacheStamp {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("game cache encode failed", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, entryKey(key, stamp), raw, c.ttl).Err(); err != nil {
		slog.Warn("game cache write failed", "key", key, "error", err.Error())
	}
}

func (c *GameCache) key(suffix string) string {
	return c.prefix + ":" + suffix
}

func (c *GameCache) gameKey(gameID string) string {
	return c.key("game:" + gameID)
}

func generationKey(key string) string {
	return key + ":gen"
}

func entryKey(key string, stamp queries.CacheStamp) string {
	return key + ":" + strconv.FormatInt(int64(stamp), 10)
}

// NoopCache is used when Redis is not configured.
type NoopCache struct{}

func (NoopCache) GetGame(context.Context, string) (*queries.GameView, queries.CacheStamp, bool) {
	return nil, queries.NoCacheStamp, false
}
func (NoopCache) SetGame(context.Context, queries.CacheStamp, *queries.GameView) {}
func (NoopCache) GetUpcoming(context.Context) ([]*queries.GameView, queries.CacheStamp, bool) {
	return nil, queries.NoCacheStamp, false
}
func (NoopCache) SetUpcoming(context.Context, queries.CacheStamp, []*queries.GameView) {}
func (NoopCache) Invalidate(context.Context, ...string)                                {}
