package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresEphemerisURL(t *testing.T) {
	t.Setenv("EPHEMERIS_URL", "")
	_, err := Load()
	assert.EqualError(t, err, "EPHEMERIS_URL is required")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EPHEMERIS_URL", "http://ephemeris:9000")
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("MAX_QUESTIONS", "")
	t.Setenv("REDIS_ADDRESS", "")
	t.Setenv("ADVISOR_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, 3, cfg.MaxQuestions)
	assert.Equal(t, 15*time.Second, cfg.EphemerisTimeout)
	assert.Equal(t, "gemini-1.5-flash", cfg.AdvisorModel)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.AdvisorEnabled())
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("EPHEMERIS_URL", "http://ephemeris:9000")
	t.Setenv("MAX_QUESTIONS", "three")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("MAX_QUESTIONS", "3")
	t.Setenv("CACHE_TTL", "forever")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CHART_DOTENV_PROBE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CHART_DOTENV_PROBE") })

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "loaded", os.Getenv("CHART_DOTENV_PROBE"))
}
