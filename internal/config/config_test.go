package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SERVER_ENV", "UPLOAD_DIR", "MAX_UPLOAD_SIZE", "UPLOAD_MAX_AGE", "REDIS_HOST", "REDIS_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, time.Hour, cfg.Upload.MaxAge)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")
	t.Setenv("UPLOAD_MAX_AGE", "30m")
	t.Setenv("SERVER_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxSize)
	assert.Equal(t, 30*time.Minute, cfg.Upload.MaxAge)
	assert.True(t, cfg.IsProduction())
}
