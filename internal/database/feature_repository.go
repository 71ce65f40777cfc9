package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"guildboard/internal/domain"
)

// FeatureRepo implements domain.FeatureRepository on GORM. Every statement is
// scoped by guild_id; the primary key constraint guarantees at most one
// record per guild.
type FeatureRepo struct {
	db *gorm.DB
}

// NewFeatureRepo creates a FeatureRepo from the shared database handle.
func NewFeatureRepo(db *gorm.DB) *FeatureRepo {
	return &FeatureRepo{db: db}
}

func (r *FeatureRepo) Find(ctx context.Context, guildID string) (*domain.WelcomeFeature, error) {
	var feature domain.WelcomeFeature
	err := r.db.WithContext(ctx).Where("guild_id = ?", guildID).First(&feature).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFeatureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("feature lookup failed: %w", err)
	}
	return &feature, nil
}

func (r *FeatureRepo) Create(ctx context.Context, guildID string) (*domain.WelcomeFeature, error) {
	feature := domain.WelcomeFeature{
		GuildID: guildID,
		Message: domain.DefaultWelcomeMessage,
	}
	err := r.db.WithContext(ctx).Create(&feature).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.ErrFeatureAlreadyEnabled
	}
	if err != nil {
		return nil, fmt.Errorf("feature create failed: %w", err)
	}
	return &feature, nil
}

func (r *FeatureRepo) UpdateAll(ctx context.Context, guildID string, patch domain.FeaturePatch) (int64, error) {
	// Updates via map so a nil channel clears the column.
	result := r.db.WithContext(ctx).
		Model(&domain.WelcomeFeature{}).
		Where("guild_id = ?", guildID).
		Updates(map[string]any{
			"message":    patch.Message,
			"channel_id": patch.ChannelID,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("feature update failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *FeatureRepo) DeleteAll(ctx context.Context, guildID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Delete(&domain.WelcomeFeature{})
	if result.Error != nil {
		return 0, fmt.Errorf("feature delete failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
