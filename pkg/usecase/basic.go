package usecase

import (
	"context"

	"github.com/ilkoid/agent-cli/pkg/llm"
)

// Basic передаёт вопрос бэкенду как есть.
type Basic struct {
	provider  llm.Provider
	presenter Presenter
}

// NewBasic создаёт сценарий.
func NewBasic(provider llm.Provider, presenter Presenter) *Basic {
	return &Basic{provider: provider, presenter: presenter}
}

// Run задаёт вопрос и показывает ответ.
func (u *Basic) Run(ctx context.Context, question string) error {
	return call(ctx, u.provider, u.presenter, ModeBasic.String(), question)
}
