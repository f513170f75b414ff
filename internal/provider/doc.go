// Package provider implements the pluggable embedding and completion
// backends: OpenAI (paid cloud), Groq (free-tier cloud, completions only),
// Ollama (self-hosted HTTP), and a deterministic offline scheme that also
// serves as the embedding fallback when a network backend degrades.
package provider
