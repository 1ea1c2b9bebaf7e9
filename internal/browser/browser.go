package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

func New(cfg Config, log *zap.Logger) *PlaywrightBrowser {
	// Установка дефолтных значений
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.NavigateTimeout == 0 {
		cfg.NavigateTimeout = 60 * time.Second // Navigate обычно дольше
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = 2 * time.Second // Дополнительное ожидание клиентского рендеринга
	}
	if cfg.ViewportWidth == 0 {
		cfg.ViewportWidth = 1280
	}
	if cfg.ViewportHeight == 0 {
		cfg.ViewportHeight = 800
	}

	return &PlaywrightBrowser{
		cfg: cfg,
		log: log,
	}
}

// getPage безопасно возвращает текущую страницу с read lock
func (b *PlaywrightBrowser) getPage() playwright.Page {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.page
}

// setPage безопасно устанавливает страницу с write lock
func (b *PlaywrightBrowser) setPage(page playwright.Page) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page = page
}

func (b *PlaywrightBrowser) getBrowserArgs() []string {
	return []string{
		"--no-sandbox",
	}
}

func (b *PlaywrightBrowser) getEnvMap() map[string]string {
	if b.cfg.Display != "" {
		return map[string]string{
			"DISPLAY": b.cfg.Display,
		}
	}
	return nil
}

func (b *PlaywrightBrowser) launchPersistent(pw *playwright.Playwright) error {
	opts := playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(b.cfg.Headless),
		Args:     b.getBrowserArgs(),
	}

	if env := b.getEnvMap(); env != nil {
		opts.Env = env
	}

	browserContext, err := pw.Chromium.LaunchPersistentContext(b.cfg.UserDataDir, opts)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.context = browserContext
	b.mu.Unlock()

	return nil
}

func (b *PlaywrightBrowser) launchStandard(pw *playwright.Playwright) error {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.cfg.Headless),
		Args:     b.getBrowserArgs(),
	}

	if env := b.getEnvMap(); env != nil {
		opts.Env = env
	}

	browser, err := pw.Chromium.Launch(opts)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.browser = browser
	b.mu.Unlock()

	return nil
}

func (b *PlaywrightBrowser) Launch(ctx context.Context) error {
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("ошибка запуска playwright: %w", err)
	}
	b.pw = pw

	if b.cfg.UserDataDir != "" {
		return b.launchPersistent(pw)
	}

	return b.launchStandard(pw)
}

// newPage создает страницу в активном контексте или браузере
func (b *PlaywrightBrowser) newPage() (playwright.Page, error) {
	b.mu.RLock()
	browserContext := b.context
	browser := b.browser
	b.mu.RUnlock()

	if browserContext != nil {
		pages := browserContext.Pages()
		if len(pages) > 0 {
			return pages[0], nil
		}
		return browserContext.NewPage()
	}

	if browser != nil {
		return browser.NewPage()
	}

	return nil, fmt.Errorf("браузер не запущен")
}

// Open открывает URL: фиксированный viewport, ожидание networkidle и
// domcontentloaded, затем пауза на клиентский рендеринг. Повторный вызов
// заменяет активную страницу новой навигацией.
func (b *PlaywrightBrowser) Open(ctx context.Context, url string) error {
	page := b.getPage()
	if page == nil {
		var err error
		page, err = b.newPage()
		if err != nil {
			return err
		}
		page.SetDefaultTimeout(float64(b.cfg.Timeout.Milliseconds()))
		b.setPage(page)
	}

	if err := page.SetViewportSize(b.cfg.ViewportWidth, b.cfg.ViewportHeight); err != nil {
		return fmt.Errorf("ошибка установки viewport: %w", err)
	}

	b.log.Info("Навигация", zap.String("url", url))

	// Создаем context с timeout для navigate операции
	navCtx, cancel := context.WithTimeout(ctx, b.cfg.NavigateTimeout)
	defer cancel()

	// Channel для получения результата
	errChan := make(chan error, 1)
	go func() {
		_, err := page.Goto(url, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateNetworkidle,
			Timeout:   playwright.Float(float64(b.cfg.NavigateTimeout.Milliseconds())),
		})
		errChan <- err
	}()

	// Ждем результат или timeout
	select {
	case <-navCtx.Done():
		return fmt.Errorf("navigate timeout after %v", b.cfg.NavigateTimeout)
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("ошибка навигации на %s: %w", url, err)
		}
	}

	if err := b.WaitForLoadState(ctx, "domcontentloaded"); err != nil {
		return fmt.Errorf("ошибка ожидания загрузки страницы: %w", err)
	}

	time.Sleep(b.cfg.SettleDelay)

	return nil
}

func (b *PlaywrightBrowser) CurrentURL() (string, error) {
	page := b.getPage()
	if page == nil {
		return "", fmt.Errorf("страница не открыта")
	}
	return page.URL(), nil
}

// Close освобождает страницу, контекст, браузер и драйвер playwright.
// Должен вызываться на каждом пути завершения, иначе останется висеть
// фоновый процесс браузера.
func (b *PlaywrightBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.context != nil {
		if err := b.context.Close(); err != nil {
			return err
		}
	}
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
	}
	if b.pw != nil {
		return b.pw.Stop()
	}
	return nil
}
