package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Встроенные значения по умолчанию для глобальных опций CLI.
const (
	DefaultTool           = "openai"
	DefaultModel          = "gpt-4o-mini"
	DefaultEmbeddingModel = "text-embedding-ada-002"
)

// AppConfig — корневая структура конфигурации.
// Она зеркалит структуру config.yaml. Файл необязателен.
type AppConfig struct {
	Defaults   DefaultsConfig     `yaml:"defaults"`
	Tools      map[string]ToolDef `yaml:"tools"`
	Generation GenerationConfig   `yaml:"generation"`
	Output     OutputConfig       `yaml:"output"`
	App        AppSpecific        `yaml:"app"`
}

// DefaultsConfig — значения глобальных флагов, если они не заданы явно.
type DefaultsConfig struct {
	Tool           string `yaml:"tool"`            // "openai", "ollama", "lmstudio", ...
	Model          string `yaml:"model"`           // Реальное имя модели в API
	EmbeddingModel string `yaml:"embedding_model"` // Принимается, но пока не используется
}

// GetDefaults возвращает дефолтные значения для незаполненных полей.
func (c *DefaultsConfig) GetDefaults() DefaultsConfig {
	result := *c // Копируем текущие значения

	if result.Tool == "" {
		result.Tool = DefaultTool
	}
	if result.Model == "" {
		result.Model = DefaultModel
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = DefaultEmbeddingModel
	}

	return result
}

// ToolDef — переопределение встроенного бэкенда или новый OpenAI-совместимый бэкенд.
type ToolDef struct {
	BaseURL   string `yaml:"base_url"`    // Обязателен для новых бэкендов
	APIKey    string `yaml:"api_key"`     // Поддерживает ${VAR}
	APIKeyEnv string `yaml:"api_key_env"` // Имя переменной с ключом, читается при сборке агента
}

// GenerationConfig — параметры генерации. Нули означают дефолт бэкенда.
type GenerationConfig struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// OutputConfig — оформление вывода "Agent: ...".
type OutputConfig struct {
	Wrap    int  `yaml:"wrap"` // 0 — без переноса, ответ печатается как есть
	NoColor bool `yaml:"no_color"`
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"` // Пусто — логи в stderr
	EnvFile string `yaml:"env_file"` // Пусто — ./.env, если существует
}

// Default возвращает конфигурацию без файла: только встроенные значения.
func Default() *AppConfig {
	cfg := &AppConfig{Tools: map[string]ToolDef{}}
	cfg.Defaults = cfg.Defaults.GetDefaults()
	return cfg
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	// 2. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Подставляем переменные окружения.
	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 4. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// 5. Валидируем и дополняем дефолтами
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	cfg.Defaults = cfg.Defaults.GetDefaults()
	if cfg.Tools == nil {
		cfg.Tools = map[string]ToolDef{}
	}

	return &cfg, nil
}

// validate проверяет диапазоны. Наличие base_url у новых бэкендов
// проверяет backend.NewCatalogFromConfig: только он знает встроенные.
func (c *AppConfig) validate() error {
	for name := range c.Tools {
		if name == "" {
			return fmt.Errorf("tools: empty tool name")
		}
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature must be within [0, 2], got %v", c.Generation.Temperature)
	}
	if c.Generation.MaxTokens < 0 {
		return fmt.Errorf("generation.max_tokens must not be negative, got %d", c.Generation.MaxTokens)
	}
	if c.Output.Wrap < 0 {
		return fmt.Errorf("output.wrap must not be negative, got %d", c.Output.Wrap)
	}
	return nil
}
