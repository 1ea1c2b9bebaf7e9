package browser

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"webScraper/internal/scan"
)

// clickStrategy — один способ адресации элемента при клике.
// Стратегии пробуются по порядку до первого успеха.
type clickStrategy struct {
	name       string
	applicable func(el *scan.ElementInfo) bool
	attempt    func(ctx context.Context, el *scan.ElementInfo) error
}

// Порядок фиксирован: xpath, затем id-селектор, затем клик по координатам
// центра захваченного bounding box (без повторного запроса геометрии).
func (b *PlaywrightBrowser) clickStrategies() []clickStrategy {
	return []clickStrategy{
		{
			name: "xpath",
			applicable: func(el *scan.ElementInfo) bool {
				return el.XPath != ""
			},
			attempt: func(ctx context.Context, el *scan.ElementInfo) error {
				return b.getPage().Click("xpath=" + el.XPath)
			},
		},
		{
			name: "id",
			applicable: func(el *scan.ElementInfo) bool {
				_, ok := el.ID()
				return ok
			},
			attempt: func(ctx context.Context, el *scan.ElementInfo) error {
				id, _ := el.ID()
				return b.getPage().Click("#" + id)
			},
		},
		{
			name: "coordinates",
			applicable: func(el *scan.ElementInfo) bool {
				return el.HasBox()
			},
			attempt: func(ctx context.Context, el *scan.ElementInfo) error {
				x, y := el.Center()
				return b.getPage().Mouse().Click(x, y)
			},
		},
	}
}

// runClickChain пробует стратегии по порядку. Ошибка автоматизации внутри
// одной попытки считается провалом этой стратегии и не прерывает цепочку.
func runClickChain(ctx context.Context, log *zap.Logger, el *scan.ElementInfo, strategies []clickStrategy) (string, bool) {
	for _, s := range strategies {
		if !s.applicable(el) {
			continue
		}
		if err := s.attempt(ctx, el); err != nil {
			log.Warn("Стратегия клика не сработала",
				zap.String("strategy", s.name),
				zap.Int("index", el.Index),
				zap.Error(err))
			continue
		}
		return s.name, true
	}
	return "", false
}

// Click кликает по элементу снапшота. Возвращает false без ошибки,
// если индекс не найден или все стратегии исчерпаны; ошибка только
// при вызове без открытой страницы.
func (b *PlaywrightBrowser) Click(ctx context.Context, index int, elements []scan.ElementInfo) (bool, error) {
	if b.getPage() == nil {
		return false, fmt.Errorf("страница не открыта")
	}

	el := scan.FindByIndex(elements, index)
	if el == nil {
		b.log.Warn("Элемент не найден в снапшоте", zap.Int("index", index))
		return false, nil
	}

	strategy, ok := runClickChain(ctx, b.log, el, b.clickStrategies())
	if !ok {
		b.log.Warn("Не удалось кликнуть по элементу", zap.Int("index", index))
		return false, nil
	}

	b.log.Info("Клик выполнен",
		zap.Int("index", index),
		zap.String("strategy", strategy))
	return true, nil
}
