package domain

import (
	"context"
	"time"
)

// DefaultWelcomeMessage is the message template a freshly enabled feature
// starts with. The {user} placeholder is replaced by the bot at send time.
const DefaultWelcomeMessage = "Welcome to the server, {user}!"

// WelcomeFeature is the per-guild configuration record for the welcome
// message feature. At most one record exists per guild; the guild ID is the
// primary key.
type WelcomeFeature struct {
	GuildID   string  `gorm:"primaryKey;column:guild_id"`
	ChannelID *string `gorm:"column:channel_id"`
	Message   string  `gorm:"column:message;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WelcomeFeature) TableName() string { return "welcome_features" }

// FeaturePatch carries the writable fields of a WelcomeFeature for an
// update. A nil ChannelID clears the stored channel.
type FeaturePatch struct {
	Message   string
	ChannelID *string
}

// FeatureRepository persists WelcomeFeature records keyed by guild ID.
//
// UpdateAll and DeleteAll affect only rows matching the guild ID and report
// how many rows that was; updating or deleting a guild without a record is a
// zero-row no-op, not an error.
type FeatureRepository interface {
	// Find returns the guild's record or ErrFeatureNotFound.
	Find(ctx context.Context, guildID string) (*WelcomeFeature, error)
	// Create inserts a record with default message and no channel. It returns
	// ErrFeatureAlreadyEnabled when the guild already has one.
	Create(ctx context.Context, guildID string) (*WelcomeFeature, error)
	// UpdateAll overwrites message and channel on the guild's record, never
	// creating one. Returns the number of rows affected.
	UpdateAll(ctx context.Context, guildID string, patch FeaturePatch) (int64, error)
	// DeleteAll removes the guild's record. Returns the number of rows affected.
	DeleteAll(ctx context.Context, guildID string) (int64, error)
}

// ViewInvalidator marks the cached rendering of a guild's feature page as
// stale so the next request re-renders it.
type ViewInvalidator interface {
	InvalidateView(ctx context.Context, guildID, featureKey string) error
}
