package extractor

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"webScraper/internal/scan"
)

// ExtractClickableElements выполняет скрипт классификации на открытой странице
// и преобразует результат в типизированные описания элементов
func ExtractClickableElements(ctx context.Context, page playwright.Page) ([]scan.ElementInfo, error) {
	result, err := page.Evaluate(clickableElementsScript)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения скрипта классификации: %w", err)
	}

	elementsData, ok := result.([]interface{})
	if !ok {
		return []scan.ElementInfo{}, nil
	}

	elements := make([]scan.ElementInfo, 0, len(elementsData))
	for _, elemData := range elementsData {
		elemMap, ok := elemData.(map[string]interface{})
		if !ok {
			continue
		}

		elem := parseElementInfo(elemMap)
		if elem != nil {
			elements = append(elements, *elem)
		}
	}

	return elements, nil
}

func parseElementInfo(data map[string]interface{}) *scan.ElementInfo {
	elem := &scan.ElementInfo{
		Attributes: map[string]string{},
	}

	if index, ok := data["index"].(float64); ok {
		elem.Index = int(index)
	}
	if tag, ok := data["tagName"].(string); ok {
		elem.Tag = tag
	}
	if text, ok := data["text"].(string); ok {
		elem.Text = text
	}
	if xpath, ok := data["xpath"].(string); ok {
		elem.XPath = xpath
	}
	if visible, ok := data["isVisible"].(bool); ok {
		elem.Visible = visible
	}
	if inViewport, ok := data["isInViewport"].(bool); ok {
		elem.InViewport = inViewport
	}

	if attrsData, ok := data["attributes"].(map[string]interface{}); ok {
		for name, value := range attrsData {
			if s, ok := value.(string); ok {
				elem.Attributes[name] = s
			}
		}
	}

	if boxData, ok := data["boundingBox"].(map[string]interface{}); ok {
		elem.Box = parseBoundingBox(boxData)
	}

	return elem
}

func parseBoundingBox(data map[string]interface{}) scan.BoundingBox {
	box := scan.BoundingBox{}

	if x, ok := data["x"].(float64); ok {
		box.X = x
	}
	if y, ok := data["y"].(float64); ok {
		box.Y = y
	}
	if width, ok := data["width"].(float64); ok {
		box.Width = width
	}
	if height, ok := data["height"].(float64); ok {
		box.Height = height
	}
	if top, ok := data["top"].(float64); ok {
		box.Top = top
	}
	if right, ok := data["right"].(float64); ok {
		box.Right = right
	}
	if bottom, ok := data["bottom"].(float64); ok {
		box.Bottom = bottom
	}
	if left, ok := data["left"].(float64); ok {
		box.Left = left
	}

	return box
}
