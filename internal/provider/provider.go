package provider

import (
	"context"
	"errors"
)

// Provider keys. The key is a process-wide configuration choice resolved once
// by the factory; it is not a per-call parameter.
const (
	KeyOpenAI  = "openai"
	KeyGroq    = "groq"
	KeyOllama  = "ollama"
	KeyOffline = "offline"
)

// Common errors
var (
	ErrEmptyText      = errors.New("text cannot be empty")
	ErrProviderFailed = errors.New("provider request failed")
	ErrNoAPIKey       = errors.New("api key not set")
)

// Provider is the capability set shared by every backend: turn text into a
// fixed-length vector, and turn a prompt pair into an answer. Not every
// backend has a native implementation of both; embedding-incapable backends
// use the deterministic offline scheme.
type Provider interface {
	// CreateEmbedding converts text to a fixed-length vector. Network
	// failures degrade to the offline scheme and are logged, never surfaced;
	// context cancellation is the one error that propagates.
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)

	// GenerateCompletion produces a natural-language answer from a system
	// and user prompt. Failures are surfaced to the caller.
	GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Key returns the short provider key
	Key() string

	// DisplayName returns the human-readable provider name
	DisplayName() string
}

// ValidateText rejects empty embedding input.
func ValidateText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return nil
}
