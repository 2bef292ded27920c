// Package app предоставляет переиспользуемые компоненты для инициализации
// и запуска сценариев агента из CLI.
//
// Правило: entry points только парсят аргументы и вызывают Initialize.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ilkoid/agent-cli/pkg/backend"
	"github.com/ilkoid/agent-cli/pkg/config"
	"github.com/ilkoid/agent-cli/pkg/factory"
	"github.com/ilkoid/agent-cli/pkg/llm"
	"github.com/ilkoid/agent-cli/pkg/llm/dummy"
	"github.com/ilkoid/agent-cli/pkg/output"
	"github.com/ilkoid/agent-cli/pkg/registry"
	"github.com/ilkoid/agent-cli/pkg/usecase"
	"github.com/ilkoid/agent-cli/pkg/utils"
)

// Settings — значения глобальных опций после разбора CLI.
//
// Пустые строки и nil означают "не задано": их заполнит WithDefaults.
// Явно заданное значение, даже нулевое, всегда важнее config.yaml.
type Settings struct {
	Tool           string
	Model          string
	EmbeddingModel string

	Debug   *bool
	NoColor *bool
	Wrap    *int
	Dummy   bool

	// Stdout — куда печатать ответы. nil — os.Stdout.
	Stdout io.Writer
	// Credentials — источник ключей. nil — окружение процесса.
	Credentials factory.CredentialSource
}

// WithDefaults дополняет незаданные поля значениями из конфигурации.
func (s Settings) WithDefaults(cfg *config.AppConfig) Settings {
	defaults := cfg.Defaults.GetDefaults()

	if s.Tool == "" {
		s.Tool = defaults.Tool
	}
	if s.Model == "" {
		s.Model = defaults.Model
	}
	if s.EmbeddingModel == "" {
		s.EmbeddingModel = defaults.EmbeddingModel
	}
	if s.Wrap == nil {
		wrap := cfg.Output.Wrap
		s.Wrap = &wrap
	}
	if s.NoColor == nil {
		noColor := cfg.Output.NoColor
		s.NoColor = &noColor
	}
	if s.Debug == nil {
		debug := cfg.App.Debug
		s.Debug = &debug
	}

	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}
	if s.Credentials == nil {
		s.Credentials = factory.EnvCredentials
	}
	return s
}

// Components — всё, что нужно одному запуску.
type Components struct {
	Config   *config.AppConfig
	Settings Settings
	Catalog  *backend.Catalog
	Agents   *factory.AgentFactory
	Printer  *output.Printer
	Registry *registry.Registry
}

// Initialize собирает компоненты. Сеть не трогается: селектор инструмента
// проверяется только при получении use case'а.
func Initialize(cfg *config.AppConfig, s Settings) (*Components, error) {
	s = s.WithDefaults(cfg)

	utils.Info("Initializing components",
		"tool", s.Tool,
		"model", s.Model,
		"embedding_model", s.EmbeddingModel,
		"dummy", s.Dummy)

	catalog, err := backend.NewCatalogFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool catalog: %w", err)
	}

	agents := factory.New(catalog, s.Credentials)
	printer := output.NewPrinter(s.Stdout, output.WithNoColor(*s.NoColor), output.WithWrap(*s.Wrap))

	reg := registry.New(s.Tool, s.Model, s.EmbeddingModel,
		registry.WithAgentFactory(agents),
		registry.WithProviderBuilder(providerBuilder(cfg, s)),
		registry.WithPresenter(printer),
	)

	return &Components{
		Config:   cfg,
		Settings: s,
		Catalog:  catalog,
		Agents:   agents,
		Printer:  printer,
		Registry: reg,
	}, nil
}

// providerBuilder выбирает живой клиент или заглушку.
func providerBuilder(cfg *config.AppConfig, s Settings) registry.ProviderBuilder {
	if s.Dummy {
		return func(llm.Agent) llm.Provider {
			return dummy.New()
		}
	}

	return registry.LiveProviders(
		llm.WithTemperature(cfg.Generation.Temperature),
		llm.WithMaxTokens(cfg.Generation.MaxTokens),
	)
}

// RunBasic выполняет сценарий basic.
func (c *Components) RunBasic(ctx context.Context, question string) error {
	basic, err := c.Registry.GetBasicUsecase()
	if err != nil {
		return err
	}
	return basic.Run(ctx, question)
}

// RunPrompt выполняет выбранную стратегию промптинга.
func (c *Components) RunPrompt(ctx context.Context, mode usecase.Mode) error {
	prompt, err := c.Registry.GetPromptUsecase()
	if err != nil {
		return err
	}

	switch mode {
	case usecase.ModeZeroShot:
		return prompt.ZeroShot(ctx)
	case usecase.ModeFewShot:
		return prompt.FewShot(ctx)
	default:
		return fmt.Errorf("%w: %s", usecase.ErrUnknownMode, mode)
	}
}

// ListTools печатает известные бэкенды, отмечая выбранный.
func (c *Components) ListTools() error {
	for _, def := range c.Catalog.Definitions() {
		if err := c.Printer.PresentTool(def.Name, def.BaseURL, def.Name == c.Settings.Tool); err != nil {
			return err
		}
	}
	return nil
}
