// Базовые типы - определяем универсальный язык общения с бэкендами
package llm

import "fmt"

// Agent — неизменяемая связка "endpoint бэкенда + модель".
//
// Создаётся фабрикой один раз на вызов и дальше только читается.
// Поля закрыты, чтобы никто не мог подменить endpoint после валидации.
type Agent struct {
	tool    string
	baseURL string
	apiKey  string
	model   string
}

// NewAgent собирает Agent. Валидация селектора — забота фабрики.
func NewAgent(tool, baseURL, apiKey, model string) Agent {
	return Agent{
		tool:    tool,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// Tool возвращает селектор бэкенда (openai, ollama, lmstudio, ...).
func (a Agent) Tool() string { return a.tool }

// BaseURL возвращает базовый URL OpenAI-совместимого API.
func (a Agent) BaseURL() string { return a.baseURL }

// APIKey возвращает ключ (для локальных бэкендов — заглушку).
func (a Agent) APIKey() string { return a.apiKey }

// Model возвращает идентификатор модели. Не валидируется.
func (a Agent) Model() string { return a.model }

// String не раскрывает ключ, поэтому Agent безопасно логировать.
func (a Agent) String() string {
	return fmt.Sprintf("%s/%s@%s", a.tool, a.model, a.baseURL)
}

// CallError — любая ошибка completion-вызова: сеть, авторизация,
// rate limit, кривой ответ. Все схлопываются в один вариант.
type CallError struct {
	Message string
	Cause   error
}

func (e *CallError) Error() string {
	return "backend error: " + e.Message
}

func (e *CallError) Unwrap() error {
	return e.Cause
}

// NewCallError оборачивает причину в CallError.
func NewCallError(cause error) *CallError {
	msg := "unknown failure"
	if cause != nil {
		msg = cause.Error()
	}
	return &CallError{Message: msg, Cause: cause}
}
