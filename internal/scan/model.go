package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// BoundingBox — геометрия элемента в координатах клиентской области на момент сканирования
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// ElementInfo описывает один кликабельный элемент страницы.
// Индексы действительны только внутри снапшота, который их породил:
// после навигации все ранее захваченные индексы теряют смысл.
type ElementInfo struct {
	Index      int               `json:"index"`
	Tag        string            `json:"tag_name"`
	Text       string            `json:"text"`
	Attributes map[string]string `json:"attributes"`
	XPath      string            `json:"xpath"`
	Visible    bool              `json:"is_visible"`
	InViewport bool              `json:"is_in_viewport"`
	Box        BoundingBox       `json:"bounding_box"`
}

// Атрибуты, которые попадают в однострочное представление элемента
var displayAttrs = []string{"id", "class", "name", "role", "type", "href"}

func (e *ElementInfo) String() string {
	var attrs []string
	for _, name := range displayAttrs {
		if v, ok := e.Attributes[name]; ok {
			attrs = append(attrs, fmt.Sprintf(`%s="%s"`, name, v))
		}
	}
	return fmt.Sprintf("[%d] <%s %s>%s</%s>", e.Index, e.Tag, strings.Join(attrs, " "), e.Text, e.Tag)
}

// Center возвращает центр захваченного bounding box для клика по координатам
func (e *ElementInfo) Center() (x, y float64) {
	return e.Box.X + e.Box.Width/2, e.Box.Y + e.Box.Height/2
}

// HasBox сообщает, был ли у элемента захвачен непустой bounding box
func (e *ElementInfo) HasBox() bool {
	return e.Box.Width > 0 || e.Box.Height > 0
}

// ID возвращает значение атрибута id, если оно есть
func (e *ElementInfo) ID() (string, bool) {
	id, ok := e.Attributes["id"]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// PageAnalysis — результат одного прохода сканирования страницы
type PageAnalysis struct {
	URL       string        `json:"url"`
	Title     string        `json:"title"`
	Timestamp string        `json:"timestamp"`
	Elements  []ElementInfo `json:"elements"`
}

// FindByIndex ищет элемент по индексу в снапшоте. Возвращает nil, если индекса нет.
func FindByIndex(elements []ElementInfo, index int) *ElementInfo {
	for i := range elements {
		if elements[i].Index == index {
			return &elements[i]
		}
	}
	return nil
}

// SaveToFile сохраняет результат анализа в JSON файл
func (a *PageAnalysis) SaveToFile(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации результата: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}
	return nil
}

// Print выводит все найденные элементы в консоль
func (a *PageAnalysis) Print() {
	fmt.Printf("\n=== Кликабельные элементы на %s ===\n", a.URL)
	fmt.Printf("Заголовок страницы: %s\n", a.Title)
	fmt.Printf("Время анализа: %s\n", a.Timestamp)
	fmt.Printf("Всего элементов: %d\n\n", len(a.Elements))

	for i := range a.Elements {
		fmt.Println(a.Elements[i].String())
	}
}
