package browser

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"webScraper/internal/scan"
)

// Highlight подсвечивает элемент снапшота. Элемент с id получает
// оверлей с номером, иначе узел ищется по XPath и красится инлайн-стилями.
// Возвращает false без ошибки, если индекс или узел не найдены.
func (b *PlaywrightBrowser) Highlight(ctx context.Context, index int, elements []scan.ElementInfo) (bool, error) {
	page := b.getPage()
	if page == nil {
		return false, fmt.Errorf("страница не открыта")
	}

	el := scan.FindByIndex(elements, index)
	if el == nil {
		b.log.Warn("Элемент не найден в снапшоте", zap.Int("index", index))
		return false, nil
	}

	if id, ok := el.ID(); ok {
		result, err := page.Evaluate(highlightOverlayScript, map[string]interface{}{
			"selector": "#" + id,
			"index":    el.Index,
		})
		if err != nil {
			b.log.Warn("Ошибка подсветки элемента", zap.Int("index", index), zap.Error(err))
			return false, nil
		}
		applied, _ := result.(bool)
		return applied, nil
	}

	if el.XPath != "" {
		result, err := page.Evaluate(highlightByXPathScript, el.XPath)
		if err != nil {
			b.log.Warn("Ошибка подсветки элемента", zap.Int("index", index), zap.Error(err))
			return false, nil
		}
		found, _ := result.(bool)
		if !found {
			b.log.Warn("Узел по XPath не найден", zap.Int("index", index), zap.String("xpath", el.XPath))
		}
		return found, nil
	}

	return false, nil
}
