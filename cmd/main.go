package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webScraper/internal/browser"
	"webScraper/internal/cli"
	"webScraper/internal/config"
	"webScraper/internal/logger"
)

var (
	headless bool
	output   string
	interact bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web-scraper [url]",
		Short: "Сканер кликабельных элементов веб-страницы",
		Long: `web-scraper открывает страницу в управляемом браузере, находит все
кликабельные элементы, выводит их описание (тег, текст, атрибуты, XPath,
геометрия) и при необходимости сохраняет результат в JSON или входит в
интерактивный режим для подсветки и кликов по индексу.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&headless, "headless", false, "Запуск браузера в headless режиме")
	rootCmd.Flags().StringVar(&output, "output", "", "Файл для сохранения результата (JSON)")
	rootCmd.Flags().BoolVar(&interact, "interact", false, "Интерактивный режим после анализа")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	url := cfg.Scan.DefaultURL
	if len(args) > 0 {
		url = args[0]
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	// Флаг имеет приоритет над переменной окружения
	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = headless
	}

	br := browser.New(browser.Config{
		Headless:        cfg.Browser.Headless,
		UserDataDir:     cfg.Browser.UserDataDir,
		BrowsersPath:    cfg.Browser.BrowsersPath,
		Display:         cfg.Browser.Display,
		ViewportWidth:   cfg.Browser.ViewportWidth,
		ViewportHeight:  cfg.Browser.ViewportHeight,
		Timeout:         cfg.Browser.Timeout,
		NavigateTimeout: cfg.Browser.NavigateTimeout,
		SettleDelay:     cfg.Browser.SettleDelay,
	}, log.Logger)

	ctx := cmd.Context()

	// Close освобождает и частично запущенные ресурсы,
	// поэтому регистрируется до проверки ошибки запуска
	defer func() {
		if err := br.Close(); err != nil {
			log.Warn("Ошибка закрытия браузера", zap.Error(err))
		}
	}()

	if err := br.Launch(ctx); err != nil {
		return fmt.Errorf("ошибка запуска браузера: %w", err)
	}

	analysis, err := br.Analyze(ctx, url)
	if err != nil {
		return err
	}

	analysis.Print()

	if output != "" {
		if err := analysis.SaveToFile(output); err != nil {
			return err
		}
		log.Info("Результат сохранен", zap.String("file", output))
	}

	if interact {
		cli.New(br, log, analysis.Elements).Run(ctx)
	}

	return nil
}
