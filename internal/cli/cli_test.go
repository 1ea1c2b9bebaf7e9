package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"webScraper/internal/logger"
	"webScraper/internal/scan"
)

// fakeBrowser записывает вызовы индексных операций
type fakeBrowser struct {
	highlights []int
	clicks     []int
	idleWaits  int
	url        string
}

func (f *fakeBrowser) Launch(ctx context.Context) error           { return nil }
func (f *fakeBrowser) Open(ctx context.Context, url string) error { return nil }
func (f *fakeBrowser) Analyze(ctx context.Context, url string) (*scan.PageAnalysis, error) {
	return nil, nil
}
func (f *fakeBrowser) Highlight(ctx context.Context, index int, elements []scan.ElementInfo) (bool, error) {
	f.highlights = append(f.highlights, index)
	return scan.FindByIndex(elements, index) != nil, nil
}
func (f *fakeBrowser) Click(ctx context.Context, index int, elements []scan.ElementInfo) (bool, error) {
	f.clicks = append(f.clicks, index)
	return scan.FindByIndex(elements, index) != nil, nil
}
func (f *fakeBrowser) CurrentURL() (string, error)                              { return f.url, nil }
func (f *fakeBrowser) WaitForLoadState(ctx context.Context, state string) error { return nil }
func (f *fakeBrowser) WaitForNetworkIdle(ctx context.Context, timeout time.Duration) error {
	f.idleWaits++
	return nil
}
func (f *fakeBrowser) Close() error { return nil }

func testElements() []scan.ElementInfo {
	return []scan.ElementInfo{
		{Index: 0, Tag: "a", Text: "Главная", XPath: "/html/body/a", Attributes: map[string]string{"href": "/"}},
		{Index: 1, Tag: "button", Text: "Отправить", Attributes: map[string]string{"id": "submit"}},
	}
}

func newTestCLI(fake *fakeBrowser, lines []string) *CLI {
	i := 0
	c := &CLI{
		browser:  fake,
		log:      &logger.Zap{Logger: zap.NewNop()},
		elements: testElements(),
	}
	c.input = func() (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	return c
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		action  string
		index   int
		wantErr bool
	}{
		{name: "подсветка", line: "h 3", action: "h", index: 3},
		{name: "клик", line: "c 0", action: "c", index: 0},
		{name: "детали", line: "s 12", action: "s", index: 12},
		{name: "регистр не важен", line: "H 1", action: "h", index: 1},
		{name: "один токен", line: "h", wantErr: true},
		{name: "три токена", line: "h 1 2", wantErr: true},
		{name: "нечисловой индекс", line: "c abc", wantErr: true},
		{name: "неизвестное действие", line: "x 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, index, err := parseCommand(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestHandleCommandQuit(t *testing.T) {
	c := newTestCLI(&fakeBrowser{}, nil)

	assert.False(t, c.handleCommand(context.Background(), "q"))
	assert.False(t, c.handleCommand(context.Background(), "Q"))
}

// Некорректный ввод не завершает цикл
func TestHandleCommandMalformedInputContinues(t *testing.T) {
	fake := &fakeBrowser{}
	c := newTestCLI(fake, nil)

	assert.True(t, c.handleCommand(context.Background(), "какая-то чепуха"))
	assert.True(t, c.handleCommand(context.Background(), "h abc"))
	assert.True(t, c.handleCommand(context.Background(), "z 1"))

	assert.Empty(t, fake.highlights)
	assert.Empty(t, fake.clicks)
}

func TestRunDispatchesCommands(t *testing.T) {
	fake := &fakeBrowser{url: "https://example.com/next"}
	c := newTestCLI(fake, []string{"h 0", "c 1", "s 0", "l", "", "q"})

	c.Run(context.Background())

	assert.Equal(t, []int{0}, fake.highlights)
	assert.Equal(t, []int{1}, fake.clicks)
	// После успешного клика ждем затишья сети
	assert.Equal(t, 1, fake.idleWaits)
}

// Отсутствующий индекс: операция сообщает о неудаче, цикл продолжается
func TestRunMissingIndex(t *testing.T) {
	fake := &fakeBrowser{}
	c := newTestCLI(fake, []string{"h 7", "c 7", "q"})

	c.Run(context.Background())

	assert.Equal(t, []int{7}, fake.highlights)
	assert.Equal(t, []int{7}, fake.clicks)
	// Неудачный клик не приводит к ожиданию загрузки
	assert.Zero(t, fake.idleWaits)
}

func TestRunStopsOnEOF(t *testing.T) {
	fake := &fakeBrowser{}
	c := newTestCLI(fake, []string{"l"})

	done := make(chan struct{})
	go func() {
		c.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("цикл не завершился по EOF")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &fakeBrowser{}
	c := newTestCLI(fake, []string{"h 0"})

	c.Run(ctx)

	assert.Empty(t, fake.highlights)
}
