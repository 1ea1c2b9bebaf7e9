package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	Logger  Logger
	Browser Browser
	Scan    Scan
}

type Logger struct {
	Env   string
	Level string
}

type Browser struct {
	Display         string
	Headless        bool
	UserDataDir     string
	BrowsersPath    string
	ViewportWidth   int
	ViewportHeight  int
	Timeout         time.Duration
	NavigateTimeout time.Duration
	SettleDelay     time.Duration
}

type Scan struct {
	DefaultURL string
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
		Browser: Browser{
			Display:         env("DISPLAY", ""),
			Headless:        envBool("PW_HEADLESS"),
			UserDataDir:     env("PW_USER_DATA_DIR", ""),
			BrowsersPath:    env("PLAYWRIGHT_BROWSERS_PATH", ""),
			ViewportWidth:   envInt("SCAN_VIEWPORT_WIDTH", 1280),
			ViewportHeight:  envInt("SCAN_VIEWPORT_HEIGHT", 800),
			Timeout:         envDuration("SCAN_TIMEOUT", 30*time.Second),
			NavigateTimeout: envDuration("SCAN_NAVIGATE_TIMEOUT", 60*time.Second),
			SettleDelay:     envDuration("SCAN_SETTLE_DELAY", 2*time.Second),
		},
		Scan: Scan{
			DefaultURL: env("SCAN_DEFAULT_URL", "https://www.google.com"),
		},
	}

	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}

func envDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
