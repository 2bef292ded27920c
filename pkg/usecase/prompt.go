package usecase

import (
	"context"

	"github.com/ilkoid/agent-cli/pkg/llm"
)

// Prompt — выбор стратегии промптинга. Ровно две операции: ZeroShot и FewShot.
type Prompt struct {
	provider  llm.Provider
	presenter Presenter
	templates Templates
}

// PromptOption настраивает Prompt.
type PromptOption func(*Prompt)

// WithTemplates подменяет встроенные шаблоны.
func WithTemplates(t Templates) PromptOption {
	return func(p *Prompt) {
		p.templates = t
	}
}

// NewPrompt создаёт сценарий со встроенными шаблонами.
func NewPrompt(provider llm.Provider, presenter Presenter, opts ...PromptOption) *Prompt {
	p := &Prompt{
		provider:  provider,
		presenter: presenter,
		templates: DefaultTemplates(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ZeroShot задаёт вопрос без примеров.
func (u *Prompt) ZeroShot(ctx context.Context) error {
	return call(ctx, u.provider, u.presenter, ModeZeroShot.String(), u.templates.ZeroShot)
}

// FewShot просит классифицировать предложение по размеченным примерам.
func (u *Prompt) FewShot(ctx context.Context) error {
	return call(ctx, u.provider, u.presenter, ModeFewShot.String(), u.templates.FewShot)
}
