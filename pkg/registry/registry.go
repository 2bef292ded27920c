// Package registry собирает готовые use case'ы из селекторов инструмента и модели.
//
// Командный слой видит только Registry и не знает, как строятся агенты,
// провайдеры и вывод.
package registry

import (
	"os"

	"github.com/ilkoid/agent-cli/pkg/factory"
	"github.com/ilkoid/agent-cli/pkg/llm"
	"github.com/ilkoid/agent-cli/pkg/output"
	"github.com/ilkoid/agent-cli/pkg/usecase"
	"github.com/ilkoid/agent-cli/pkg/utils"
)

// ProviderBuilder превращает агента в провайдер.
type ProviderBuilder func(agent llm.Agent) llm.Provider

// Registry — фабрика use case'ов. Агент не кешируется: каждый аксессор
// заново проходит через AgentFactory и сам проверяет селектор.
type Registry struct {
	tool           string
	model          string
	embeddingModel string

	agents    *factory.AgentFactory
	build     ProviderBuilder
	presenter usecase.Presenter
}

// Option настраивает Registry.
type Option func(*Registry)

// WithAgentFactory задаёт фабрику агентов (каталог и источник ключей).
func WithAgentFactory(f *factory.AgentFactory) Option {
	return func(r *Registry) {
		r.agents = f
	}
}

// WithProviderBuilder подменяет живой провайдер, например заглушкой.
func WithProviderBuilder(b ProviderBuilder) Option {
	return func(r *Registry) {
		r.build = b
	}
}

// WithPresenter задаёт, куда показывать ответы.
func WithPresenter(p usecase.Presenter) Option {
	return func(r *Registry) {
		r.presenter = p
	}
}

// LiveProviders строит живой клиент с параметрами генерации.
func LiveProviders(opts ...llm.GenerateOption) ProviderBuilder {
	return func(agent llm.Agent) llm.Provider {
		return factory.NewLLMProvider(agent, opts...)
	}
}

// New создаёт реестр. embeddingModel принимается на будущее и пока не используется.
func New(tool, model, embeddingModel string, opts ...Option) *Registry {
	r := &Registry{
		tool:           tool,
		model:          model,
		embeddingModel: embeddingModel,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.agents == nil {
		r.agents = factory.New(nil, factory.EnvCredentials)
	}
	if r.build == nil {
		r.build = LiveProviders()
	}
	if r.presenter == nil {
		r.presenter = output.NewPrinter(os.Stdout)
	}

	return r
}

// Tool возвращает селектор инструмента.
func (r *Registry) Tool() string { return r.tool }

// Model возвращает идентификатор модели.
func (r *Registry) Model() string { return r.model }

// EmbeddingModel возвращает модель эмбеддингов (пока не используется сценариями).
func (r *Registry) EmbeddingModel() string { return r.embeddingModel }

// GetBasicUsecase строит свежий Basic со своим агентом.
func (r *Registry) GetBasicUsecase() (*usecase.Basic, error) {
	provider, err := r.buildProvider()
	if err != nil {
		return nil, err
	}
	return usecase.NewBasic(provider, r.presenter), nil
}

// GetPromptUsecase строит свежий Prompt со своим агентом.
func (r *Registry) GetPromptUsecase() (*usecase.Prompt, error) {
	provider, err := r.buildProvider()
	if err != nil {
		return nil, err
	}
	return usecase.NewPrompt(provider, r.presenter), nil
}

func (r *Registry) buildProvider() (llm.Provider, error) {
	agent, err := r.agents.Build(r.tool, r.model)
	if err != nil {
		return nil, err
	}

	utils.Debug("Provider built",
		"agent", agent.String(),
		"embedding_model", r.embeddingModel)

	return r.build(agent), nil
}
