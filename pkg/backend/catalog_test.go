package backend_test

import (
	"sync"
	"testing"

	"github.com/ilkoid/agent-cli/pkg/backend"
	"github.com/ilkoid/agent-cli/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuiltinCatalog(t *testing.T) {
	c := backend.NewBuiltinCatalog()

	assert.Equal(t, []string{"lmstudio", "ollama", "openai"}, c.Names())

	ollama, ok := c.Lookup(backend.ToolOllama)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:11434/v1", ollama.BaseURL)
	assert.Equal(t, "ollama", ollama.PlaceholderKey)

	lmstudio, ok := c.Lookup(backend.ToolLMStudio)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:1234/v1", lmstudio.BaseURL)

	openai, ok := c.Lookup(backend.ToolOpenAI)
	require.True(t, ok)
	assert.Equal(t, "OPENAI_API_KEY", openai.CredentialEnv)

	_, ok = c.Lookup("anthropic")
	assert.False(t, ok)
}

func TestCatalog_Register(t *testing.T) {
	c := backend.NewCatalog()

	require.NoError(t, c.Register(backend.Definition{Name: "vllm", BaseURL: "http://localhost:8000/v1"}))
	assert.Error(t, c.Register(backend.Definition{Name: "vllm"}), "duplicate name")
	assert.Error(t, c.Register(backend.Definition{}), "empty name")
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	c := backend.NewCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = c.Register(backend.Definition{Name: string(rune('a' + i))})
		}(i)
		go func() {
			defer wg.Done()
			_ = c.Names()
		}()
	}
	wg.Wait()

	assert.Len(t, c.Names(), 20)
}

func TestNewCatalogFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tools = map[string]config.ToolDef{
		"ollama":     {BaseURL: "http://gpu-box:11434/v1"},
		"openrouter": {BaseURL: "https://openrouter.ai/api/v1", APIKeyEnv: "OPENROUTER_API_KEY"},
		"openai":     {APIKey: "sk-from-config"},
	}

	c, err := backend.NewCatalogFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"lmstudio", "ollama", "openai", "openrouter"}, c.Names())

	ollama, _ := c.Lookup("ollama")
	assert.Equal(t, "http://gpu-box:11434/v1", ollama.BaseURL)
	assert.Equal(t, "ollama", ollama.PlaceholderKey, "unset fields keep builtin values")

	openai, _ := c.Lookup("openai")
	assert.Equal(t, "https://api.openai.com/v1", openai.BaseURL)
	assert.Equal(t, "sk-from-config", openai.APIKey)

	openrouter, _ := c.Lookup("openrouter")
	assert.Equal(t, "OPENROUTER_API_KEY", openrouter.CredentialEnv)

	defs := c.Definitions()
	require.Len(t, defs, 4)
	assert.Equal(t, "lmstudio", defs[0].Name)
}

func TestNewCatalogFromConfig_NewToolNeedsBaseURL(t *testing.T) {
	cfg := config.Default()
	cfg.Tools = map[string]config.ToolDef{"vllm": {APIKey: "x"}}

	_, err := backend.NewCatalogFromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
}

func TestNewCatalogFromConfig_Nil(t *testing.T) {
	c, err := backend.NewCatalogFromConfig(nil)
	require.NoError(t, err)
	assert.Len(t, c.Names(), 3)
}
