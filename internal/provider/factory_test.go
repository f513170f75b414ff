package provider

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProviderSelection(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name    string
		cfg     Config
		wantKey string
		wantErr bool
	}{
		{
			name:    "openai with key",
			cfg:     Config{Key: "openai", OpenAIAPIKey: "sk-test"},
			wantKey: KeyOpenAI,
		},
		{
			name:    "openai without key fails",
			cfg:     Config{Key: "openai"},
			wantErr: true,
		},
		{
			name:    "groq with key",
			cfg:     Config{Key: "groq", GroqAPIKey: "gsk-test"},
			wantKey: KeyGroq,
		},
		{
			name:    "groq without key fails",
			cfg:     Config{Key: "groq"},
			wantErr: true,
		},
		{
			name:    "ollama needs no key",
			cfg:     Config{Key: "ollama"},
			wantKey: KeyOllama,
		},
		{
			name:    "offline explicit",
			cfg:     Config{Key: "offline"},
			wantKey: KeyOffline,
		},
		{
			name:    "unknown key resolves to offline",
			cfg:     Config{Key: "claude-9000"},
			wantKey: KeyOffline,
		},
		{
			name:    "empty key resolves to offline",
			cfg:     Config{},
			wantKey: KeyOffline,
		},
		{
			name:    "key is case insensitive",
			cfg:     Config{Key: "OLLAMA"},
			wantKey: KeyOllama,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg, log)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoAPIKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, p.Key())
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, KeyOpenAI, Detect(Config{OpenAIAPIKey: "sk"}))
	assert.Equal(t, KeyGroq, Detect(Config{GroqAPIKey: "gsk"}))
	assert.Equal(t, KeyOpenAI, Detect(Config{OpenAIAPIKey: "sk", GroqAPIKey: "gsk"}))
	assert.Equal(t, KeyOffline, Detect(Config{}))
	assert.Equal(t, "ollama", Detect(Config{Key: "OLLAMA"}))
}
