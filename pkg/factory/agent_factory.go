package factory

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilkoid/agent-cli/pkg/backend"
	"github.com/ilkoid/agent-cli/pkg/llm"
	"github.com/ilkoid/agent-cli/pkg/llm/openai"
	"github.com/ilkoid/agent-cli/pkg/utils"
)

// ErrUnsupportedTool — селектора нет в каталоге.
var ErrUnsupportedTool = errors.New("unsupported tool")

// ConfigError — ошибка конфигурации, обнаруженная локально, до любых сетевых вызовов.
type ConfigError struct {
	Tool string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Tool)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CredentialSource ищет значение секрета по имени переменной.
type CredentialSource func(name string) (string, bool)

// EnvCredentials читает секреты из окружения процесса.
func EnvCredentials(name string) (string, bool) {
	return os.LookupEnv(name)
}

// StaticCredentials отдаёт секреты из фиксированной карты (для тестов).
func StaticCredentials(values map[string]string) CredentialSource {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

// AgentFactory — единственное место, где селектор превращается в endpoint.
type AgentFactory struct {
	catalog     *backend.Catalog
	credentials CredentialSource
}

// New создаёт фабрику. nil catalog — встроенные бэкенды, nil credentials — окружение.
func New(catalog *backend.Catalog, credentials CredentialSource) *AgentFactory {
	if catalog == nil {
		catalog = backend.NewBuiltinCatalog()
	}
	if credentials == nil {
		credentials = EnvCredentials
	}
	return &AgentFactory{
		catalog:     catalog,
		credentials: credentials,
	}
}

// Build связывает селектор и модель в llm.Agent.
//
// Неизвестный селектор — *ConfigError с ErrUnsupportedTool, без I/O.
// Отсутствующий ключ здесь не ошибка: о нём сообщит бэкенд при первом вызове.
// Модель передаётся как есть.
func (f *AgentFactory) Build(tool, model string) (llm.Agent, error) {
	def, ok := f.catalog.Lookup(tool)
	if !ok {
		utils.Warn("Unsupported tool requested", "tool", tool, "known", f.catalog.Names())
		return llm.Agent{}, &ConfigError{Tool: tool, Err: ErrUnsupportedTool}
	}

	apiKey := f.resolveKey(def)
	if apiKey == "" {
		utils.Debug("No credential resolved, backend will decide", "tool", tool, "env", def.CredentialEnv)
	}

	agent := llm.NewAgent(def.Name, def.BaseURL, apiKey, model)
	utils.Debug("Agent built", "agent", agent.String())

	return agent, nil
}

// Catalog возвращает каталог фабрики.
func (f *AgentFactory) Catalog() *backend.Catalog {
	return f.catalog
}

func (f *AgentFactory) resolveKey(def backend.Definition) string {
	if def.APIKey != "" {
		return def.APIKey
	}
	if def.CredentialEnv != "" {
		if v, ok := f.credentials(def.CredentialEnv); ok && v != "" {
			return v
		}
	}
	return def.PlaceholderKey
}

// NewLLMProvider оборачивает агента в живой клиент.
func NewLLMProvider(agent llm.Agent, opts ...llm.GenerateOption) llm.Provider {
	return openai.NewClient(agent, opts...)
}
