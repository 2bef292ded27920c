// Интерфейс Провайдера через который работает всё приложение.

package llm

import "context"

// Provider — контракт для любого completion-бэкенда.
//
// Реализаций ровно две: живой клиент (pkg/llm/openai) и детерминированная
// заглушка (pkg/llm/dummy). Use case'ы держат только этот интерфейс.
type Provider interface {
	// CallPrompt отправляет один промпт и возвращает текст ответа как есть.
	CallPrompt(ctx context.Context, question string) (string, error)
}
