package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"webScraper/internal/browser"
	"webScraper/internal/cli/ui"
	"webScraper/internal/logger"
	"webScraper/internal/scan"
)

// CLI — интерактивный цикл поверх снапшота элементов. Индексы команд
// действительны только для снапшота, переданного при создании.
type CLI struct {
	browser  browser.Browser
	log      *logger.Zap
	elements []scan.ElementInfo
	rl       *readline.Instance
	input    func() (string, error)
}

func New(br browser.Browser, log *logger.Zap, elements []scan.ElementInfo) *CLI {
	c := &CLI{
		browser:  br,
		log:      log,
		elements: elements,
	}

	// Инициализация readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".web-scraper-history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Warn("Не удалось инициализировать readline, будет использован fallback режим")
	} else {
		c.rl = rl
	}

	c.input = c.readLine
	return c
}

func (c *CLI) readLine() (string, error) {
	if c.rl != nil {
		return c.rl.Readline()
	}
	// Fallback для работы без readline
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(ui.ColorCyan + "> " + ui.ColorReset)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) closeReadline() {
	if c.rl != nil {
		c.rl.Close()
	}
}

func (c *CLI) Run(ctx context.Context) {
	ui.PrintInteractiveHelp()
	defer c.closeReadline()

	for {
		// Проверка отмены контекста
		select {
		case <-ctx.Done():
			fmt.Println("\n" + ui.ColorCyan + ui.IconWave + " Получен сигнал завершения..." + ui.ColorReset)
			return
		default:
		}

		line, err := c.input()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		} else if err == io.EOF {
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if !c.handleCommand(ctx, line) {
			return
		}
	}
}

// handleCommand возвращает false только для команды выхода
func (c *CLI) handleCommand(ctx context.Context, line string) bool {
	switch strings.ToLower(line) {
	case "q":
		fmt.Println(ui.ColorCyan + ui.IconWave + " Выход из интерактивного режима" + ui.ColorReset)
		return false
	case "l":
		for i := range c.elements {
			fmt.Println(c.elements[i].String())
		}
		return true
	}

	action, index, err := parseCommand(line)
	if err != nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " " + err.Error() + ui.ColorReset)
		return true
	}

	switch action {
	case "h":
		c.highlight(ctx, index)
	case "c":
		c.click(ctx, index)
	case "s":
		c.show(index)
	}
	return true
}

func parseCommand(line string) (string, int, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("неверный формат команды, используйте 'h <индекс>', 'c <индекс>' или 's <индекс>'")
	}

	action := strings.ToLower(parts[0])
	if action != "h" && action != "c" && action != "s" {
		return "", 0, fmt.Errorf("неизвестная команда: %s", parts[0])
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("неверный индекс: %s", parts[1])
	}

	return action, index, nil
}

func (c *CLI) highlight(ctx context.Context, index int) {
	ok, err := c.browser.Highlight(ctx, index, c.elements)
	if err != nil {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка подсветки:"+ui.ColorReset+" %v\n", err)
		return
	}
	if !ok {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Не удалось подсветить элемент %d"+ui.ColorReset+"\n", index)
		return
	}
	fmt.Printf(ui.ColorGreen+ui.IconCheckmark+" Подсвечен элемент %d"+ui.ColorReset+"\n", index)
}

func (c *CLI) click(ctx context.Context, index int) {
	ok, err := c.browser.Click(ctx, index, c.elements)
	if err != nil {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка клика:"+ui.ColorReset+" %v\n", err)
		return
	}
	if !ok {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Не удалось кликнуть по элементу %d"+ui.ColorReset+"\n", index)
		return
	}
	fmt.Printf(ui.ColorGreen+ui.IconCheckmark+" Клик по элементу %d"+ui.ColorReset+"\n", index)

	// После клика ждем затишья сети и сообщаем, куда перешла страница
	if err := c.browser.WaitForNetworkIdle(ctx, 0); err != nil {
		c.log.Warn("Ошибка ожидания загрузки после клика", zap.Error(err))
	}
	url, err := c.browser.CurrentURL()
	if err != nil {
		c.log.Warn("Не удалось получить URL страницы", zap.Error(err))
		return
	}
	fmt.Printf(ui.ColorCyan+ui.IconArrow+" Страница перешла на:"+ui.ColorReset+" %s\n", url)
}

func (c *CLI) show(index int) {
	el := scan.FindByIndex(c.elements, index)
	if el == nil {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Элемент с индексом %d не найден"+ui.ColorReset+"\n", index)
		return
	}

	fmt.Println("\n" + ui.ColorBold + "Детали элемента:" + ui.ColorReset)
	fmt.Printf(ui.ColorCyan+"  Индекс:"+ui.ColorReset+" %d\n", el.Index)
	fmt.Printf(ui.ColorCyan+"  Тег:"+ui.ColorReset+" %s\n", el.Tag)
	fmt.Printf(ui.ColorCyan+"  Текст:"+ui.ColorReset+" %s\n", el.Text)
	fmt.Printf(ui.ColorCyan+"  XPath:"+ui.ColorReset+" %s\n", el.XPath)
	fmt.Println(ui.ColorCyan + "  Атрибуты:" + ui.ColorReset)
	for k, v := range el.Attributes {
		fmt.Printf("    "+ui.ColorGray+"%s:"+ui.ColorReset+" %s\n", k, v)
	}
	fmt.Println(ui.ColorCyan + "  Bounding Box:" + ui.ColorReset)
	fmt.Printf("    "+ui.ColorGray+"x:"+ui.ColorReset+" %.1f  "+ui.ColorGray+"y:"+ui.ColorReset+" %.1f\n", el.Box.X, el.Box.Y)
	fmt.Printf("    "+ui.ColorGray+"width:"+ui.ColorReset+" %.1f  "+ui.ColorGray+"height:"+ui.ColorReset+" %.1f\n", el.Box.Width, el.Box.Height)
	fmt.Printf("    "+ui.ColorGray+"top:"+ui.ColorReset+" %.1f  "+ui.ColorGray+"right:"+ui.ColorReset+" %.1f  "+ui.ColorGray+"bottom:"+ui.ColorReset+" %.1f  "+ui.ColorGray+"left:"+ui.ColorReset+" %.1f\n",
		el.Box.Top, el.Box.Right, el.Box.Bottom, el.Box.Left)
	fmt.Println()
}
