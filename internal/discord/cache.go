package discord

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"guildboard/internal/metrics"
)

// Windows holds the per-resource freshness windows. A cached response is
// served until its window elapses; repeated calls inside the window never
// reach Discord. This is a staleness tolerance, not a correctness cache;
// nothing invalidates it on feature writes.
type Windows struct {
	UserInfo    time.Duration
	GuildList   time.Duration
	GuildInfo   time.Duration
	ChannelList time.Duration
}

// DefaultWindows returns the production freshness windows.
func DefaultWindows() Windows {
	return Windows{
		UserInfo:    60 * time.Second,
		GuildList:   10 * time.Second,
		GuildInfo:   30 * time.Second,
		ChannelList: 30 * time.Second,
	}
}

// CachedClient decorates a Directory with freshness-window caching. Keys are
// the request signature (resource + credential or guild ID); values carry the
// response and its expiry. Errors are never cached.
type CachedClient struct {
	inner   Directory
	windows Windows
	clock   clockwork.Clock

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewCachedClient wraps inner with the given freshness windows. A zero or
// negative window disables caching for that resource.
func NewCachedClient(inner Directory, windows Windows, clock clockwork.Clock) *CachedClient {
	return &CachedClient{
		inner:   inner,
		windows: windows,
		clock:   clock,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedClient) FetchUserInfo(ctx context.Context, token string) (*User, error) {
	key := "user_info:" + token
	if v, ok := c.lookup("user_info", key); ok {
		return v.(*User), nil
	}

	user, err := c.inner.FetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	c.store(key, user, c.windows.UserInfo)
	return user, nil
}

func (c *CachedClient) FetchGuilds(ctx context.Context, token string) ([]Guild, error) {
	key := "guild_list:" + token
	if v, ok := c.lookup("guild_list", key); ok {
		return v.([]Guild), nil
	}

	guilds, err := c.inner.FetchGuilds(ctx, token)
	if err != nil {
		return nil, err
	}
	c.store(key, guilds, c.windows.GuildList)
	return guilds, nil
}

func (c *CachedClient) FetchGuildInfo(ctx context.Context, token, guildID string) (*Guild, error) {
	key := "guild_info:" + token + ":" + guildID
	if v, ok := c.lookup("guild_info", key); ok {
		return v.(*Guild), nil
	}

	guild, err := c.inner.FetchGuildInfo(ctx, token, guildID)
	if err != nil {
		return nil, err
	}
	c.store(key, guild, c.windows.GuildInfo)
	return guild, nil
}

func (c *CachedClient) FetchGuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	key := "channel_list:" + guildID
	if v, ok := c.lookup("channel_list", key); ok {
		return v.([]Channel), nil
	}

	channels, err := c.inner.FetchGuildChannels(ctx, guildID)
	if err != nil {
		return nil, err
	}
	c.store(key, channels, c.windows.ChannelList)
	return channels, nil
}

func (c *CachedClient) lookup(resource, key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.clock.Now().After(entry.expiresAt) {
		// Expired entries count as misses; eviction happens periodically.
		metrics.DirectoryCacheMisses.WithLabelValues(resource).Inc()
		return nil, false
	}

	metrics.DirectoryCacheHits.WithLabelValues(resource).Inc()
	return entry.value, true
}

func (c *CachedClient) store(key string, value any, window time.Duration) {
	if window <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: c.clock.Now().Add(window),
	}
}

// Size returns the current number of entries (including expired).
func (c *CachedClient) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// EvictExpired removes all expired entries and returns the count evicted.
func (c *CachedClient) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	evicted := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

// StartEvictionTimer starts a goroutine that periodically evicts expired
// entries so the cache does not grow without bound. The returned stop
// function cleans up the goroutine.
func (c *CachedClient) StartEvictionTimer(interval time.Duration) func() {
	ticker := c.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.Chan():
				evicted := c.EvictExpired()
				if evicted > 0 {
					slog.Debug("Evicted expired directory cache entries",
						"count", evicted,
						"remaining", c.Size(),
					)
					metrics.DirectoryCacheEvictions.Add(float64(evicted))
				}
				metrics.DirectoryCacheSize.Set(float64(c.Size()))

			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
