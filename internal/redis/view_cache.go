package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"guildboard/internal/metrics"
)

const (
	viewCachePrefix = "feature_view:"

	// TTL is a backstop only; staleness is handled by explicit invalidation
	// after every feature mutation.
	viewCacheTTL = 1 * time.Hour
)

// viewCacheCmdable is the slice of the go-redis API the view cache uses.
// *goredis.Client satisfies it; tests substitute a stub.
type viewCacheCmdable interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// ViewCache caches the rendered feature page per (guild, feature) pair and
// implements domain.ViewInvalidator. Reads and populates are best-effort: a
// Redis failure degrades to a fresh render, never an error to the user.
type ViewCache struct {
	rdb viewCacheCmdable
}

// NewViewCache creates a view cache on the given Redis client.
func NewViewCache(rdb viewCacheCmdable) *ViewCache {
	return &ViewCache{rdb: rdb}
}

func viewCacheKey(guildID, featureKey string) string {
	return viewCachePrefix + guildID + ":" + featureKey
}

// Get returns the cached rendering for (guildID, featureKey), or ("", false)
// on a miss.
func (v *ViewCache) Get(ctx context.Context, guildID, featureKey string) (string, bool) {
	html, err := v.rdb.Get(ctx, viewCacheKey(guildID, featureKey)).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			slog.WarnContext(ctx, "View cache read failed, re-rendering",
				"guild_id", guildID, "feature", featureKey, "error", err)
		}
		metrics.ViewCacheMisses.Inc()
		return "", false
	}

	metrics.ViewCacheHits.Inc()
	return html, true
}

// Set stores a rendering for (guildID, featureKey). Failures are logged and
// swallowed.
func (v *ViewCache) Set(ctx context.Context, guildID, featureKey, html string) {
	if err := v.rdb.Set(ctx, viewCacheKey(guildID, featureKey), html, viewCacheTTL).Err(); err != nil {
		slog.WarnContext(ctx, "Failed to populate view cache",
			"guild_id", guildID, "feature", featureKey, "error", err)
	}
}

// InvalidateView removes the cached rendering for (guildID, featureKey) so
// the next access recomputes it.
func (v *ViewCache) InvalidateView(ctx context.Context, guildID, featureKey string) error {
	if err := v.rdb.Del(ctx, viewCacheKey(guildID, featureKey)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate view cache: %w", err)
	}
	return nil
}
