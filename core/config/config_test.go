package config_test

import (
	"testing"

	"storage-assistant/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "s3.amazonaws.com", cfg.Storage.Endpoint)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 3, cfg.Storage.MaxRetries)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model.Name)
	assert.Equal(t, 60, cfg.Model.TimeoutSeconds)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("STORAGE_ACCESS_KEY", "env-key")
	t.Setenv("MODEL_API_KEY", "model-key")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Storage.AccessKey)
	assert.Equal(t, "model-key", cfg.Model.ApiKey)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled)
}
