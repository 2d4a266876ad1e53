package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "configs/items.json", cfg.ItemsPath)
	assert.Equal(t, 15*time.Minute, cfg.VoiceTickInterval)
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-number")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoadRejectsBadTickInterval(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("VOICE_TICK_INTERVAL", "soon")

	_, err := Load()

	assert.Error(t, err)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "bot",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "disruptpoints",
	}

	assert.Equal(t, "postgres://bot:secret@db:5432/disruptpoints?sslmode=disable", cfg.GetDBConnString())
}

func TestValidateEnvReportsMissing(t *testing.T) {
	for _, v := range RequiredEnvVars {
		t.Setenv(v, "")
	}

	err := ValidateEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "API_KEY")
}
