package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"codequery/internal/provider"
)

// Environment variable names
const (
	EnvProvider      = "CODEQUERY_PROVIDER"
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvGroqAPIKey    = "GROQ_API_KEY"
	EnvOllamaBaseURL = "CODEQUERY_OLLAMA_URL"
	EnvWorkers       = "CODEQUERY_WORKERS"
	EnvCacheSize     = "CODEQUERY_CACHE_SIZE"
	EnvLogLevel      = "CODEQUERY_LOG_LEVEL"
)

// Config is the process-wide configuration, built once at startup and passed
// explicitly to the components that need it.
type Config struct {
	Provider provider.Config
	Workers  int
	LogLevel string
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() *Config {
	// Missing .env is the normal case
	_ = godotenv.Load()

	cfg := &Config{
		Provider: provider.Config{
			Key:           os.Getenv(EnvProvider),
			OpenAIAPIKey:  os.Getenv(EnvOpenAIAPIKey),
			GroqAPIKey:    os.Getenv(EnvGroqAPIKey),
			OllamaBaseURL: os.Getenv(EnvOllamaBaseURL),
			CacheSize:     intEnv(EnvCacheSize, provider.DefaultCacheSize),
		},
		Workers:  intEnv(EnvWorkers, runtime.NumCPU()),
		LogLevel: os.Getenv(EnvLogLevel),
	}

	if cfg.Provider.Key == "" {
		cfg.Provider.Key = provider.Detect(cfg.Provider)
	}

	return cfg
}

func intEnv(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
