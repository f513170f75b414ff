package provider

import (
	"strings"

	"github.com/rs/zerolog"
)

// Config holds provider construction settings. One config is built at process
// start and one provider lives for the lifetime of the process.
type Config struct {
	Key           string
	OpenAIAPIKey  string
	GroqAPIKey    string
	OllamaBaseURL string
	CacheSize     int
}

// New resolves the provider key once, here. This switch is the single
// dispatch site: the offline provider is the explicit default arm, so an
// unrecognized key degrades instead of failing. Only a selected remote
// backend missing its credential is an error.
func New(cfg Config, log zerolog.Logger) (Provider, error) {
	cache := NewCache(cfg.CacheSize)

	switch strings.ToLower(cfg.Key) {
	case KeyOpenAI:
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cache, log)
	case KeyGroq:
		return NewGroqProvider(cfg.GroqAPIKey, cache, log)
	case KeyOllama:
		return NewOllamaProvider(cfg.OllamaBaseURL, cache, log), nil
	default:
		if cfg.Key != "" && cfg.Key != KeyOffline {
			log.Warn().Str("provider", cfg.Key).Msg("unknown provider key, using offline provider")
		}
		return NewOfflineProvider(cache), nil
	}
}

// Detect returns the provider key that would be chosen when none is set
// explicitly: a configured credential wins, otherwise offline.
func Detect(cfg Config) string {
	if cfg.Key != "" {
		return strings.ToLower(cfg.Key)
	}
	if cfg.OpenAIAPIKey != "" {
		return KeyOpenAI
	}
	if cfg.GroqAPIKey != "" {
		return KeyGroq
	}
	return KeyOffline
}
