package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// OpenAI defaults
const (
	DefaultOpenAIEmbeddingModel  = "text-embedding-3-small"
	DefaultOpenAICompletionModel = "gpt-4o-mini"

	openAIBaseURL = "https://api.openai.com/v1"

	// MaxEmbeddingInputBytes is the token-safe truncation bound applied to
	// embedding input before it is sent to a remote API.
	MaxEmbeddingInputBytes = 8000
)

// OpenAIProvider is the paid cloud backend: native embeddings and chat
// completions behind an API key.
type OpenAIProvider struct {
	apiKey          string
	embeddingModel  string
	completionModel string
	baseURL         string
	httpClient      *http.Client
	cache           *Cache
	log             zerolog.Logger
}

// NewOpenAIProvider creates the OpenAI backend. The API key is required.
func NewOpenAIProvider(apiKey string, cache *Cache, log zerolog.Logger) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY", ErrNoAPIKey)
	}

	return &OpenAIProvider{
		apiKey:          apiKey,
		embeddingModel:  DefaultOpenAIEmbeddingModel,
		completionModel: DefaultOpenAICompletionModel,
		baseURL:         openAIBaseURL,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		cache:           cache,
		log:             log,
	}, nil
}

func (o *OpenAIProvider) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	hash := ComputeHash(text)
	if o.cache != nil {
		if vec, ok := o.cache.Get(hash); ok {
			return vec, nil
		}
	}

	input := truncate(text, MaxEmbeddingInputBytes)

	config := DefaultRetryConfig()
	vec, err := retryWithBackoff(ctx, config, func() ([]float32, error) {
		return o.callEmbeddings(ctx, input)
	})
	if err != nil {
		// Cancellation propagates; anything else degrades to the offline
		// scheme so indexing keeps making progress.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		o.log.Warn().Err(err).Str("provider", KeyOpenAI).Msg("embedding degraded to offline scheme")
		vec = HashEmbedding(text)
	}

	if o.cache != nil {
		o.cache.Set(hash, vec)
	}
	return vec, nil
}

func (o *OpenAIProvider) callEmbeddings(ctx context.Context, input string) ([]float32, error) {
	reqBody := map[string]any{
		"input": input,
		"model": o.embeddingModel,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Data) == 0 {
		return nil, fmt.Errorf("%w: no embeddings returned", ErrProviderFailed)
	}

	return apiResp.Data[0].Embedding, nil
}

func (o *OpenAIProvider) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	config := DefaultRetryConfig()
	answer, err := retryWithBackoff(ctx, config, func() (string, error) {
		return callChatCompletions(ctx, o.httpClient, o.baseURL, o.apiKey, o.completionModel, systemPrompt, userPrompt)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	return answer, nil
}

func (o *OpenAIProvider) Key() string { return KeyOpenAI }

func (o *OpenAIProvider) DisplayName() string { return "OpenAI" }

// callChatCompletions posts an OpenAI-compatible chat completion request.
// Groq exposes the same wire format, so both remote backends share it.
func callChatCompletions(ctx context.Context, client *http.Client, baseURL, apiKey, model, systemPrompt, userPrompt string) (string, error) {
	reqBody := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrProviderFailed)
	}

	return apiResp.Choices[0].Message.Content, nil
}

// truncate bounds text to max bytes without splitting the trailing rune run
// mid-line more than necessary.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
