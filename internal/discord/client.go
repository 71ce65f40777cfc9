package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "guildboard/internal/errors"
	"guildboard/internal/metrics"
)

const (
	defaultBaseURL  = "https://discord.com/api/v9"
	httpCallTimeout = 10 * time.Second

	// Upstream error bodies are diagnostic detail, not payload; cap them.
	maxErrorBodySize = 64 << 10
)

// Directory is the read-only guild directory consumed by the server layer.
// *Client implements it directly; CachedClient adds freshness windows.
type Directory interface {
	FetchUserInfo(ctx context.Context, token string) (*User, error)
	FetchGuilds(ctx context.Context, token string) ([]Guild, error)
	FetchGuildInfo(ctx context.Context, token, guildID string) (*Guild, error)
	FetchGuildChannels(ctx context.Context, guildID string) ([]Channel, error)
}

// Client calls the Discord REST API. The bot token is injected at
// construction; user-scoped calls take the user's bearer token per call.
// Responses are never retried: any non-success status surfaces immediately
// with the response body as error detail.
type Client struct {
	httpClient *http.Client
	baseURL    string
	botToken   string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API base URL (tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Discord REST client using the given bot token for
// bot-scoped endpoints.
func NewClient(botToken string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: httpCallTimeout},
		baseURL:    defaultBaseURL,
		botToken:   botToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchUserInfo returns the authenticated user's profile.
func (c *Client) FetchUserInfo(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.get(ctx, "user_info", "/users/@me", "Bearer "+token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchGuilds returns the guilds visible to the authenticated user.
func (c *Client) FetchGuilds(ctx context.Context, token string) ([]Guild, error) {
	var guilds []Guild
	if err := c.get(ctx, "guild_list", "/users/@me/guilds", "Bearer "+token, &guilds); err != nil {
		return nil, err
	}
	return guilds, nil
}

// FetchGuildInfo returns metadata for a single guild.
func (c *Client) FetchGuildInfo(ctx context.Context, token, guildID string) (*Guild, error) {
	var guild Guild
	if err := c.get(ctx, "guild_info", "/guilds/"+guildID, "Bearer "+token, &guild); err != nil {
		return nil, err
	}
	return &guild, nil
}

// FetchGuildChannels returns the full, unfiltered channel list of a guild.
// This is a bot-scoped endpoint; callers filter by type themselves.
func (c *Client) FetchGuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	var channels []Channel
	if err := c.get(ctx, "channel_list", "/guilds/"+guildID+"/channels", "Bot "+c.botToken, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (c *Client) get(ctx context.Context, resource, path, authorization string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.InternalError("failed to create discord request", err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "upstream_error").Inc()
		return apperrors.UpstreamError("discord request failed", err).WithContext("resource", resource)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "auth_error").Inc()
		return apperrors.AuthError("discord rejected credentials").WithContext("resource", resource)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "upstream_error").Inc()
		return apperrors.UpstreamError(
			fmt.Sprintf("discord returned status %d", resp.StatusCode),
			errors.New(string(body)),
		).WithContext("resource", resource)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "upstream_error").Inc()
		return apperrors.UpstreamError("failed to decode discord response", err).WithContext("resource", resource)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(resource, "ok").Inc()
	return nil
}
