package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Groq defaults
const (
	DefaultGroqModel = "llama-3.1-8b-instant"

	groqBaseURL = "https://api.groq.com/openai/v1"
)

// GroqProvider is the free-tier cloud backend. It supports completions only;
// it has no embedding endpoint, so embedding requests use the deterministic
// offline scheme directly.
type GroqProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	offline    *OfflineProvider
	log        zerolog.Logger
}

// NewGroqProvider creates the Groq backend. The API key is required.
func NewGroqProvider(apiKey string, cache *Cache, log zerolog.Logger) (*GroqProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GROQ_API_KEY", ErrNoAPIKey)
	}

	return &GroqProvider{
		apiKey:     apiKey,
		model:      DefaultGroqModel,
		baseURL:    groqBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		offline:    NewOfflineProvider(cache),
		log:        log,
	}, nil
}

// CreateEmbedding always uses the offline scheme: there is no Groq embedding
// API to call, so no network failure path exists here.
func (g *GroqProvider) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return g.offline.CreateEmbedding(ctx, text)
}

func (g *GroqProvider) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	config := DefaultRetryConfig()
	answer, err := retryWithBackoff(ctx, config, func() (string, error) {
		return callChatCompletions(ctx, g.httpClient, g.baseURL, g.apiKey, g.model, systemPrompt, userPrompt)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	return answer, nil
}

func (g *GroqProvider) Key() string { return KeyGroq }

func (g *GroqProvider) DisplayName() string { return "Groq" }
