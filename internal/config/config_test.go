package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "musings")
	t.Setenv("REDIS_HOST", "localhost:6379")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadMissingKeysEnumerated(t *testing.T) {
	// Only a subset present: the error has to name every absent key.
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "musings")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "REDIS_HOST")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.NotContains(t, err.Error(), "DB_HOST")
	assert.NotContains(t, err.Error(), "DB_NAME")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.App.ReadOnly)
	assert.Equal(t, "hqdefault", cfg.YouTube.ThumbnailQuality)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
}

func TestLoadReadOnlyMode(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_READONLY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.ReadOnly)
}

func TestLoadInvalidThumbnailQuality(t *testing.T) {
	setRequired(t)
	t.Setenv("YOUTUBE_THUMBNAIL_QUALITY", "sddefault")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YOUTUBE_THUMBNAIL_QUALITY")
}
