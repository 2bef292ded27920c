// Package openai реализует живой вариант llm.Provider для OpenAI-совместимых API.
//
// Один и тот же клиент обслуживает OpenAI, Ollama и LM Studio: бэкенды
// отличаются только BaseURL и ключом, которые уже зашиты в llm.Agent.
package openai

import (
	"context"
	"errors"
	"time"

	"github.com/ilkoid/agent-cli/pkg/llm"
	"github.com/ilkoid/agent-cli/pkg/utils"
	openai "github.com/sashabaranov/go-openai"
)

// Client реализует интерфейс llm.Provider поверх go-openai.
type Client struct {
	api   *openai.Client
	agent llm.Agent
	opts  llm.GenerateOptions
}

// NewClient создает клиент для уже провалидированного агента.
//
// Сеть не трогается: соединение и авторизация проверяются только
// при первом CallPrompt.
func NewClient(agent llm.Agent, opts ...llm.GenerateOption) *Client {
	cfg := openai.DefaultConfig(agent.APIKey())
	if agent.BaseURL() != "" {
		cfg.BaseURL = agent.BaseURL()
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		agent: agent,
		opts:  llm.ApplyOptions(opts...),
	}
}

// Agent возвращает агента, к которому привязан клиент.
func (c *Client) Agent() llm.Agent {
	return c.agent
}

// CallPrompt выполняет ровно один chat completion запрос.
//
// Без retry и без собственного таймаута: отмена возможна только через ctx.
// Любая ошибка бэкенда возвращается как *llm.CallError.
func (c *Client) CallPrompt(ctx context.Context, question string) (string, error) {
	startTime := time.Now()

	utils.Debug("LLM request started",
		"tool", c.agent.Tool(),
		"model", c.agent.Model(),
		"prompt_length", len(question))

	resp, err := c.api.CreateChatCompletion(ctx, c.buildRequest(question))
	if err != nil {
		utils.Error("LLM API request failed",
			"error", err,
			"tool", c.agent.Tool(),
			"model", c.agent.Model(),
			"duration_ms", time.Since(startTime).Milliseconds())
		return "", llm.NewCallError(err)
	}

	if len(resp.Choices) == 0 {
		return "", llm.NewCallError(errors.New("no choices in response"))
	}

	content := resp.Choices[0].Message.Content

	utils.Info("LLM response received",
		"tool", c.agent.Tool(),
		"model", c.agent.Model(),
		"content_length", len(content),
		"duration_ms", time.Since(startTime).Milliseconds())

	return content, nil
}

// buildRequest собирает запрос из одного user-сообщения.
func (c *Client) buildRequest(question string) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model: c.agent.Model(),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: question,
			},
		},
	}

	if c.opts.Temperature > 0 {
		req.Temperature = float32(c.opts.Temperature)
	}
	if c.opts.MaxTokens > 0 {
		req.MaxTokens = c.opts.MaxTokens
	}

	return req
}
