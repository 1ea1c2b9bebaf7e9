package browser

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"webScraper/internal/scan"
)

type Browser interface {
	Launch(ctx context.Context) error
	Open(ctx context.Context, url string) error
	Analyze(ctx context.Context, url string) (*scan.PageAnalysis, error)
	Highlight(ctx context.Context, index int, elements []scan.ElementInfo) (bool, error)
	Click(ctx context.Context, index int, elements []scan.ElementInfo) (bool, error)
	CurrentURL() (string, error)
	WaitForLoadState(ctx context.Context, state string) error
	WaitForNetworkIdle(ctx context.Context, timeout time.Duration) error
	Close() error
}

type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	cfg     Config
	log     *zap.Logger
	mu      sync.RWMutex
}

type Config struct {
	Headless        bool
	UserDataDir     string
	BrowsersPath    string
	Display         string
	ViewportWidth   int
	ViewportHeight  int
	Timeout         time.Duration
	NavigateTimeout time.Duration
	SettleDelay     time.Duration
}
