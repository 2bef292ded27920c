// Package usecase собирает сценарии поверх llm.Provider.
//
// Сценарии знают только интерфейс провайдера: живой клиент и заглушка
// подставляются снаружи, веток "если тест" здесь нет.
package usecase

import (
	"context"
	"fmt"

	"github.com/ilkoid/agent-cli/pkg/llm"
	"github.com/ilkoid/agent-cli/pkg/utils"
)

// Presenter показывает ответ пользователю.
type Presenter interface {
	PresentResponse(response string) error
}

// Error — ошибка completion-вызова внутри сценария.
type Error struct {
	Usecase string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s usecase: %v", e.Usecase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// call — общий путь: один CallPrompt, затем вывод.
func call(ctx context.Context, provider llm.Provider, presenter Presenter, name, prompt string) error {
	utils.Debug("Usecase started", "usecase", name, "prompt_length", len(prompt))

	response, err := provider.CallPrompt(ctx, prompt)
	if err != nil {
		return &Error{Usecase: name, Err: err}
	}

	if err := presenter.PresentResponse(response); err != nil {
		return fmt.Errorf("%s usecase: present response: %w", name, err)
	}
	return nil
}
