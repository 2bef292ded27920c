package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultTool, cfg.Defaults.Tool)
	assert.Equal(t, DefaultModel, cfg.Defaults.Model)
	assert.Equal(t, DefaultEmbeddingModel, cfg.Defaults.EmbeddingModel)
	assert.NotNil(t, cfg.Tools)
}

func TestLoad_ExpandsEnvAndFillsDefaults(t *testing.T) {
	t.Setenv("TEST_OPENROUTER_KEY", "or-key")

	path := writeConfig(t, `
defaults:
  tool: ollama
tools:
  openrouter:
    base_url: https://openrouter.ai/api/v1
    api_key: ${TEST_OPENROUTER_KEY}
  ollama:
    base_url: http://gpu-box:11434/v1
generation:
  temperature: 0.3
  max_tokens: 256
output:
  wrap: 80
  no_color: true
app:
  debug: true
  log_file: agent.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Defaults.Tool)
	assert.Equal(t, DefaultModel, cfg.Defaults.Model, "missing fields take built-in defaults")
	assert.Equal(t, DefaultEmbeddingModel, cfg.Defaults.EmbeddingModel)

	require.Contains(t, cfg.Tools, "openrouter")
	assert.Equal(t, "or-key", cfg.Tools["openrouter"].APIKey)
	assert.Equal(t, "http://gpu-box:11434/v1", cfg.Tools["ollama"].BaseURL)

	assert.Equal(t, 0.3, cfg.Generation.Temperature)
	assert.Equal(t, 256, cfg.Generation.MaxTokens)
	assert.Equal(t, 80, cfg.Output.Wrap)
	assert.True(t, cfg.Output.NoColor)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "agent.log", cfg.App.LogFile)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "broken yaml", content: "defaults: [", errMsg: "failed to parse yaml"},
		{name: "temperature out of range", content: "generation:\n  temperature: 3\n", errMsg: "generation.temperature"},
		{name: "negative max tokens", content: "generation:\n  max_tokens: -1\n", errMsg: "generation.max_tokens"},
		{name: "negative wrap", content: "output:\n  wrap: -5\n", errMsg: "output.wrap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
