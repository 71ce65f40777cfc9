package discord

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDirectory counts upstream calls per method.
type countingDirectory struct {
	userCalls    int
	guildCalls   int
	infoCalls    int
	channelCalls int
}

func (d *countingDirectory) FetchUserInfo(ctx context.Context, token string) (*User, error) {
	d.userCalls++
	return &User{ID: "u1", Username: "nova"}, nil
}

func (d *countingDirectory) FetchGuilds(ctx context.Context, token string) ([]Guild, error) {
	d.guildCalls++
	return []Guild{{ID: "g1", Name: "alpha"}}, nil
}

func (d *countingDirectory) FetchGuildInfo(ctx context.Context, token, guildID string) (*Guild, error) {
	d.infoCalls++
	return &Guild{ID: guildID, Name: "alpha"}, nil
}

func (d *countingDirectory) FetchGuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	d.channelCalls++
	return []Channel{{ID: "c1", Name: "general", Type: ChannelTypeGuildText}}, nil
}

func newTestCache(inner Directory, clock clockwork.Clock) *CachedClient {
	return NewCachedClient(inner, DefaultWindows(), clock)
}

func TestCachedClient_UserInfoWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &countingDirectory{}
	cache := newTestCache(inner, clock)
	ctx := context.Background()

	user, err := cache.FetchUserInfo(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 1, inner.userCalls)

	// Within the 60s window, no upstream call
	clock.Advance(59 * time.Second)
	_, err = cache.FetchUserInfo(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.userCalls)

	// Past the window, refetch
	clock.Advance(2 * time.Second)
	_, err = cache.FetchUserInfo(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.userCalls)
}

func TestCachedClient_GuildListWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &countingDirectory{}
	cache := newTestCache(inner, clock)
	ctx := context.Background()

	_, err := cache.FetchGuilds(ctx, "tok")
	require.NoError(t, err)
	_, err = cache.FetchGuilds(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.guildCalls)

	// The guild list has the shortest window (10s)
	clock.Advance(11 * time.Second)
	_, err = cache.FetchGuilds(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.guildCalls)
}

func TestCachedClient_KeysByCredential(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &countingDirectory{}
	cache := newTestCache(inner, clock)
	ctx := context.Background()

	_, _ = cache.FetchGuilds(ctx, "alice")
	_, _ = cache.FetchGuilds(ctx, "bob")

	// Different tokens never share entries
	assert.Equal(t, 2, inner.guildCalls)
}

func TestCachedClient_KeysByGuild(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &countingDirectory{}
	cache := newTestCache(inner, clock)
	ctx := context.Background()

	_, _ = cache.FetchGuildChannels(ctx, "g1")
	_, _ = cache.FetchGuildChannels(ctx, "g2")
	_, _ = cache.FetchGuildChannels(ctx, "g1")

	assert.Equal(t, 2, inner.channelCalls)
}

func TestCachedClient_ErrorsAreNotCached(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &failingDirectory{}
	cache := newTestCache(inner, clock)
	ctx := context.Background()

	_, err := cache.FetchUserInfo(ctx, "tok")
	require.Error(t, err)
	_, err = cache.FetchUserInfo(ctx, "tok")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 0, cache.Size())
}

func TestCachedClient_EvictExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &countingDirectory{}
	cache := newTestCache(inner, clock)
	ctx := context.Background()

	_, _ = cache.FetchUserInfo(ctx, "tok")
	_, _ = cache.FetchGuilds(ctx, "tok")
	assert.Equal(t, 2, cache.Size())

	// 10s window elapses for the guild list; user info (60s) survives
	clock.Advance(11 * time.Second)
	evicted := cache.EvictExpired()
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, cache.Size())
}

func TestCachedClient_ZeroWindowDisablesCaching(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &countingDirectory{}
	cache := NewCachedClient(inner, Windows{}, clock)
	ctx := context.Background()

	_, _ = cache.FetchUserInfo(ctx, "tok")
	_, _ = cache.FetchUserInfo(ctx, "tok")

	assert.Equal(t, 2, inner.userCalls)
}

// failingDirectory always errors.
type failingDirectory struct {
	calls int
}

func (d *failingDirectory) FetchUserInfo(ctx context.Context, token string) (*User, error) {
	d.calls++
	return nil, context.DeadlineExceeded
}

func (d *failingDirectory) FetchGuilds(ctx context.Context, token string) ([]Guild, error) {
	d.calls++
	return nil, context.DeadlineExceeded
}

func (d *failingDirectory) FetchGuildInfo(ctx context.Context, token, guildID string) (*Guild, error) {
	d.calls++
	return nil, context.DeadlineExceeded
}

func (d *failingDirectory) FetchGuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	d.calls++
	return nil, context.DeadlineExceeded
}
