package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codequery/internal/provider"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvProvider, "")
	t.Setenv(EnvOpenAIAPIKey, "")
	t.Setenv(EnvGroqAPIKey, "")
	t.Setenv(EnvWorkers, "")
	t.Setenv(EnvCacheSize, "")

	cfg := Load()

	assert.Equal(t, provider.KeyOffline, cfg.Provider.Key)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, provider.DefaultCacheSize, cfg.Provider.CacheSize)
}

func TestLoad_ExplicitProvider(t *testing.T) {
	t.Setenv(EnvProvider, "ollama")
	t.Setenv(EnvOllamaBaseURL, "http://models.local:11434")

	cfg := Load()

	assert.Equal(t, "ollama", cfg.Provider.Key)
	assert.Equal(t, "http://models.local:11434", cfg.Provider.OllamaBaseURL)
}

func TestLoad_KeyDetection(t *testing.T) {
	t.Setenv(EnvProvider, "")
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvGroqAPIKey, "")

	cfg := Load()
	assert.Equal(t, provider.KeyOpenAI, cfg.Provider.Key)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv(EnvWorkers, "not-a-number")
	t.Setenv(EnvCacheSize, "-5")

	cfg := Load()
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, provider.DefaultCacheSize, cfg.Provider.CacheSize)
}
