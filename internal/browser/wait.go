package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

func (b *PlaywrightBrowser) WaitForLoadState(ctx context.Context, state string) error {
	page := b.getPage()
	if page == nil {
		return fmt.Errorf("страница не открыта")
	}

	var loadState *playwright.LoadState
	switch strings.ToLower(state) {
	case "load":
		loadState = playwright.LoadStateLoad
	case "domcontentloaded":
		loadState = playwright.LoadStateDomcontentloaded
	case "networkidle":
		loadState = playwright.LoadStateNetworkidle
	default:
		loadState = playwright.LoadStateLoad
	}

	opts := playwright.PageWaitForLoadStateOptions{
		State:   loadState,
		Timeout: playwright.Float(b.cfg.Timeout.Seconds() * 1000),
	}

	return page.WaitForLoadState(opts)
}

func (b *PlaywrightBrowser) WaitForNetworkIdle(ctx context.Context, timeout time.Duration) error {
	page := b.getPage()
	if page == nil {
		return fmt.Errorf("страница не открыта")
	}

	if timeout == 0 {
		timeout = b.cfg.Timeout
	}

	return b.WaitForLoadState(ctx, "networkidle")
}
