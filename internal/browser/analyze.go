package browser

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"webScraper/internal/extractor"
	"webScraper/internal/scan"
)

// Analyze открывает страницу и строит снапшот кликабельных элементов.
// Любая индексная операция имеет смысл только поверх снапшота,
// возвращенного этим вызовом.
func (b *PlaywrightBrowser) Analyze(ctx context.Context, url string) (*scan.PageAnalysis, error) {
	if err := b.Open(ctx, url); err != nil {
		return nil, err
	}

	page := b.getPage()

	title, err := page.Title()
	if err != nil {
		title = ""
	}

	elements, err := extractor.ExtractClickableElements(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("ошибка извлечения элементов: %w", err)
	}

	b.log.Info("Найдены кликабельные элементы", zap.Int("count", len(elements)))

	return &scan.PageAnalysis{
		URL:       url,
		Title:     title,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Elements:  elements,
	}, nil
}
