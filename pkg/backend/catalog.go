// Package backend предоставляет каталог известных completion-бэкендов.
//
// Каталог — замкнутое, но расширяемое множество селекторов (openai, ollama,
// lmstudio и всё, что добавлено через config.yaml). Фабрика агентов
// отвергает любой селектор, которого здесь нет, ещё до сетевых вызовов.
package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ilkoid/agent-cli/pkg/config"
)

// Встроенные селекторы.
const (
	ToolOpenAI   = "openai"
	ToolOllama   = "ollama"
	ToolLMStudio = "lmstudio"
)

// Definition — как достучаться до бэкенда.
//
// Ключ выбирается в порядке: APIKey, переменная CredentialEnv, PlaceholderKey.
type Definition struct {
	Name           string
	BaseURL        string
	APIKey         string
	CredentialEnv  string
	PlaceholderKey string
}

// Builtin возвращает определения встроенных бэкендов.
func Builtin() []Definition {
	return []Definition{
		{
			Name:          ToolOpenAI,
			BaseURL:       "https://api.openai.com/v1",
			CredentialEnv: "OPENAI_API_KEY",
		},
		{
			Name:           ToolOllama,
			BaseURL:        "http://localhost:11434/v1",
			PlaceholderKey: "ollama",
		},
		{
			Name:           ToolLMStudio,
			BaseURL:        "http://localhost:1234/v1",
			PlaceholderKey: "lm-studio",
		},
	}
}

// Catalog — потокобезопасное хранилище определений бэкендов.
type Catalog struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewCatalog создаёт пустой каталог.
func NewCatalog() *Catalog {
	return &Catalog{
		defs: make(map[string]Definition),
	}
}

// NewBuiltinCatalog создаёт каталог только со встроенными бэкендами.
func NewBuiltinCatalog() *Catalog {
	c := NewCatalog()
	for _, def := range Builtin() {
		c.defs[def.Name] = def
	}
	return c
}

// Register добавляет бэкенд. Ошибка, если имя уже занято.
func (c *Catalog) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("backend name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.defs[def.Name]; exists {
		return fmt.Errorf("backend '%s' already registered", def.Name)
	}
	c.defs[def.Name] = def
	return nil
}

// Lookup возвращает определение по селектору.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.defs[name]
	return def, ok
}

// Names возвращает отсортированный список селекторов.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions возвращает определения в порядке Names.
func (c *Catalog) Definitions() []Definition {
	names := c.Names()

	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, c.defs[name])
	}
	return defs
}

// NewCatalogFromConfig создаёт каталог из встроенных бэкендов и секции tools.
//
// Запись с именем встроенного бэкенда переопределяет его непустые поля.
// Новый бэкенд обязан указать base_url.
func NewCatalogFromConfig(cfg *config.AppConfig) (*Catalog, error) {
	catalog := NewBuiltinCatalog()
	if cfg == nil {
		return catalog, nil
	}

	for name, toolDef := range cfg.Tools {
		def, builtin := catalog.Lookup(name)
		if !builtin {
			if toolDef.BaseURL == "" {
				return nil, fmt.Errorf("tool '%s': base_url is required", name)
			}
			def = Definition{Name: name}
		}

		if toolDef.BaseURL != "" {
			def.BaseURL = toolDef.BaseURL
		}
		if toolDef.APIKey != "" {
			def.APIKey = toolDef.APIKey
		}
		if toolDef.APIKeyEnv != "" {
			def.CredentialEnv = toolDef.APIKeyEnv
		}

		catalog.mu.Lock()
		catalog.defs[name] = def
		catalog.mu.Unlock()
	}

	return catalog, nil
}
