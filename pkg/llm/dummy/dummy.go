// Package dummy — детерминированная заглушка llm.Provider без сети.
//
// Нужна, чтобы гонять use case'ы и реестр без ключей и без бэкенда.
package dummy

import (
	"context"
	"fmt"
)

// Client отвечает на любой промпт строкой "Dummy response to: {question}".
type Client struct{}

// New создает заглушку.
func New() *Client {
	return &Client{}
}

// CallPrompt никогда не ошибается и не смотрит на ctx.
func (c *Client) CallPrompt(_ context.Context, question string) (string, error) {
	return Response(question), nil
}

// Response — ответ заглушки для question.
func Response(question string) string {
	return fmt.Sprintf("Dummy response to: %s", question)
}
