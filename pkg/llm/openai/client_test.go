package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ilkoid/agent-cli/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend поднимает OpenAI-совместимый /chat/completions.
type fakeBackend struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []map[string]any
	auth     []string
}

func (fb *fakeBackend) Requests() []map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]map[string]any(nil), fb.requests...)
}

func (fb *fakeBackend) Auth() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.auth...)
}

func newFakeBackend(t *testing.T, status int, body string) *fakeBackend {
	t.Helper()

	fb := &fakeBackend{}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}

		var payload map[string]any
		fb.mu.Lock()
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			fb.requests = append(fb.requests, payload)
		}
		fb.auth = append(fb.auth, r.Header.Get("Authorization"))
		fb.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fb.server.Close)

	return fb
}

const okBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1,
	"model": "gpt-4o-mini",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "I am a test model."}, "finish_reason": "stop"}
	]
}`

// TestNewClient тестирует создание клиента.
func TestNewClient(t *testing.T) {
	tests := []struct {
		name  string
		agent llm.Agent
	}{
		{
			name:  "openai",
			agent: llm.NewAgent("openai", "https://api.openai.com/v1", "test-key", "gpt-4o-mini"),
		},
		{
			name:  "ollama",
			agent: llm.NewAgent("ollama", "http://localhost:11434/v1", "ollama", "llama3"),
		},
		{
			name:  "empty base url falls back to sdk default",
			agent: llm.NewAgent("openai", "", "test-key", "gpt-4o-mini"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.agent)
			require.NotNil(t, client)
			assert.NotNil(t, client.api)
			assert.Equal(t, tt.agent, client.Agent())
		})
	}
}

func TestCallPrompt_ReturnsContentVerbatim(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK, okBody)
	agent := llm.NewAgent("lmstudio", fb.server.URL+"/v1", "lm-studio", "gpt-4o-mini")

	resp, err := NewClient(agent).CallPrompt(context.Background(), "Who are you?")
	require.NoError(t, err)
	assert.Equal(t, "I am a test model.", resp)

	requests := fb.Requests()
	require.Len(t, requests, 1, "exactly one request per call")
	assert.Equal(t, "gpt-4o-mini", requests[0]["model"])
	assert.Equal(t, "Bearer lm-studio", fb.Auth()[0])

	messages, ok := requests[0]["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "Who are you?", msg["content"])
}

func TestCallPrompt_GenerationOptions(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK, okBody)
	agent := llm.NewAgent("ollama", fb.server.URL+"/v1", "ollama", "llama3")

	client := NewClient(agent, llm.WithTemperature(0.5), llm.WithMaxTokens(64))
	_, err := client.CallPrompt(context.Background(), "hi")
	require.NoError(t, err)

	requests := fb.Requests()
	require.Len(t, requests, 1)
	assert.InDelta(t, 0.5, requests[0]["temperature"], 0.0001)
	assert.EqualValues(t, 64, requests[0]["max_tokens"])
}

func TestCallPrompt_BackendErrorIsCallError(t *testing.T) {
	fb := newFakeBackend(t, http.StatusUnauthorized,
		`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`)
	agent := llm.NewAgent("openai", fb.server.URL+"/v1", "", "gpt-4o-mini")

	resp, err := NewClient(agent).CallPrompt(context.Background(), "hi")
	require.Error(t, err)
	assert.Empty(t, resp)

	var callErr *llm.CallError
	require.True(t, errors.As(err, &callErr))
	assert.Contains(t, callErr.Message, "Incorrect API key provided")
	assert.Len(t, fb.Requests(), 1, "no retry")
}

func TestCallPrompt_NoChoices(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK,
		`{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`)
	agent := llm.NewAgent("ollama", fb.server.URL+"/v1", "ollama", "m")

	_, err := NewClient(agent).CallPrompt(context.Background(), "hi")

	var callErr *llm.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "no choices in response", callErr.Message)
}

func TestCallPrompt_UnreachableBackend(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK, okBody)
	url := fb.server.URL
	fb.server.Close()

	agent := llm.NewAgent("ollama", url+"/v1", "ollama", "m")
	_, err := NewClient(agent).CallPrompt(context.Background(), "hi")

	var callErr *llm.CallError
	require.ErrorAs(t, err, &callErr)
	assert.NotEmpty(t, callErr.Message)
}
