package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PW_HEADLESS", "")
	t.Setenv("SCAN_VIEWPORT_WIDTH", "")
	t.Setenv("SCAN_VIEWPORT_HEIGHT", "")
	t.Setenv("SCAN_NAVIGATE_TIMEOUT", "")
	t.Setenv("SCAN_SETTLE_DELAY", "")
	t.Setenv("SCAN_DEFAULT_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Logger.Env)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, 1280, cfg.Browser.ViewportWidth)
	assert.Equal(t, 800, cfg.Browser.ViewportHeight)
	assert.Equal(t, 60*time.Second, cfg.Browser.NavigateTimeout)
	assert.Equal(t, 2*time.Second, cfg.Browser.SettleDelay)
	assert.Equal(t, "https://www.google.com", cfg.Scan.DefaultURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PW_HEADLESS", "true")
	t.Setenv("SCAN_VIEWPORT_WIDTH", "1920")
	t.Setenv("SCAN_VIEWPORT_HEIGHT", "1080")
	t.Setenv("SCAN_SETTLE_DELAY", "500ms")
	t.Setenv("SCAN_DEFAULT_URL", "https://duckduckgo.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 1920, cfg.Browser.ViewportWidth)
	assert.Equal(t, 1080, cfg.Browser.ViewportHeight)
	assert.Equal(t, 500*time.Millisecond, cfg.Browser.SettleDelay)
	assert.Equal(t, "https://duckduckgo.com", cfg.Scan.DefaultURL)
}

func TestEnvBool(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "TRUE"} {
		t.Setenv("PW_HEADLESS", v)
		assert.True(t, envBool("PW_HEADLESS"), "значение %q", v)
	}
	for _, v := range []string{"false", "0", "no", ""} {
		t.Setenv("PW_HEADLESS", v)
		assert.False(t, envBool("PW_HEADLESS"), "значение %q", v)
	}
}

func TestEnvDurationInvalid(t *testing.T) {
	t.Setenv("SCAN_SETTLE_DELAY", "не длительность")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Browser.SettleDelay)
}
