package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"guildboard/internal/domain"
)

func newTestRepo(t *testing.T) *FeatureRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.WelcomeFeature{}))

	return NewFeatureRepo(db)
}

func TestFeatureRepo_FindMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Find(context.Background(), "g1")
	assert.ErrorIs(t, err, domain.ErrFeatureNotFound)
}

func TestFeatureRepo_CreateSetsDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", created.GuildID)
	assert.Equal(t, domain.DefaultWelcomeMessage, created.Message)
	assert.Nil(t, created.ChannelID)

	found, err := repo.Find(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWelcomeMessage, found.Message)
	assert.Nil(t, found.ChannelID)
}

func TestFeatureRepo_CreateDuplicate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "g1")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "g1")
	assert.ErrorIs(t, err, domain.ErrFeatureAlreadyEnabled)
}

func TestFeatureRepo_UpdateAllScoped(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "g1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "g2")
	require.NoError(t, err)

	channel := "123456789012345678"
	updated, err := repo.UpdateAll(ctx, "g1", domain.FeaturePatch{Message: "hello", ChannelID: &channel})
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)

	g1, err := repo.Find(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "hello", g1.Message)
	require.NotNil(t, g1.ChannelID)
	assert.Equal(t, channel, *g1.ChannelID)

	g2, err := repo.Find(ctx, "g2")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWelcomeMessage, g2.Message)
	assert.Nil(t, g2.ChannelID)
}

func TestFeatureRepo_UpdateAllClearsChannel(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "g1")
	require.NoError(t, err)

	channel := "42"
	_, err = repo.UpdateAll(ctx, "g1", domain.FeaturePatch{Message: "hi", ChannelID: &channel})
	require.NoError(t, err)

	_, err = repo.UpdateAll(ctx, "g1", domain.FeaturePatch{Message: "hi"})
	require.NoError(t, err)

	found, err := repo.Find(ctx, "g1")
	require.NoError(t, err)
	assert.Nil(t, found.ChannelID)
}

func TestFeatureRepo_UpdateAllMissingIsNoop(t *testing.T) {
	repo := newTestRepo(t)

	updated, err := repo.UpdateAll(context.Background(), "g1", domain.FeaturePatch{Message: "hi"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)

	_, err = repo.Find(context.Background(), "g1")
	assert.ErrorIs(t, err, domain.ErrFeatureNotFound)
}

func TestFeatureRepo_DeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "g1")
	require.NoError(t, err)

	deleted, err := repo.DeleteAll(ctx, "g1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.DeleteAll(ctx, "g1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)

	_, err = repo.Find(ctx, "g1")
	assert.ErrorIs(t, err, domain.ErrFeatureNotFound)
}
