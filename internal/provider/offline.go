package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// OfflineDimension is the vector size of the deterministic embedding scheme.
const OfflineDimension = 384

// OfflineProvider is the deterministic, network-free backend. Embeddings are
// a hash-bucketed bag-of-words; completions are a fixed template. It is the
// default when no provider key is recognized, and the fallback scheme for
// backends without a working embedding endpoint.
type OfflineProvider struct {
	cache *Cache
}

// NewOfflineProvider creates the deterministic offline provider.
func NewOfflineProvider(cache *Cache) *OfflineProvider {
	return &OfflineProvider{cache: cache}
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// HashEmbedding computes the deterministic bag-of-words vector: lowercase,
// strip non-word characters, split on whitespace, drop tokens of two or fewer
// characters, accumulate a position-weighted contribution 1/(1+0.1*i) into
// the token's hash bucket, then L2-normalize. An all-zero vector (no usable
// tokens) is returned unnormalized.
func HashEmbedding(text string) []float32 {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	vec := make([]float64, OfflineDimension)
	idx := 0
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 2 {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%OfflineDimension] += 1.0 / (1.0 + 0.1*float64(idx))
		idx++
	}

	var sum float64
	for _, v := range vec {
		sum += v * v
	}

	out := make([]float32, OfflineDimension)
	if sum == 0 {
		return out
	}
	norm := math.Sqrt(sum)
	for i, v := range vec {
		out[i] = float32(v / norm)
	}
	return out
}

func (o *OfflineProvider) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	hash := ComputeHash(text)
	if o.cache != nil {
		if vec, ok := o.cache.Get(hash); ok {
			return vec, nil
		}
	}

	vec := HashEmbedding(text)
	if o.cache != nil {
		o.cache.Set(hash, vec)
	}
	return vec, nil
}

var contextFileRe = regexp.MustCompile(`--- File: (\S+) \(lines \d+-\d+\) ---`)

// GenerateCompletion produces the template answer: it echoes the question,
// names up to three files found in the supplied context block, and explains
// how to enable a real provider. It never touches the network.
func (o *OfflineProvider) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	question, contextBlock := splitPrompt(userPrompt)

	var files []string
	seen := make(map[string]bool)
	for _, m := range contextFileRe.FindAllStringSubmatch(contextBlock, -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		files = append(files, m[1])
		if len(files) == 3 {
			break
		}
	}

	var b strings.Builder
	b.WriteString("[Demo Mode] I found code relevant to your question")
	if question != "" {
		fmt.Fprintf(&b, " %q", question)
	}
	b.WriteString(".\n\n")

	if len(files) > 0 {
		b.WriteString("The most relevant files are:\n")
		for _, f := range files {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\nReview the referenced line ranges below for the details.\n")
	} else {
		b.WriteString("No file context was supplied with this question.\n")
	}

	b.WriteString("\nDemo Mode uses deterministic search only. For AI-generated answers, configure a real provider:\n")
	b.WriteString("- openai: set OPENAI_API_KEY\n")
	b.WriteString("- groq: set GROQ_API_KEY\n")
	b.WriteString("- ollama: run a local Ollama server and set CODEQUERY_PROVIDER=ollama\n")

	return b.String(), nil
}

// splitPrompt recovers the question and context block from the user prompt
// assembled by the retrieval service.
func splitPrompt(userPrompt string) (question, contextBlock string) {
	const marker = "\n\nContext:\n"
	if i := strings.Index(userPrompt, marker); i >= 0 {
		q := strings.TrimPrefix(userPrompt[:i], "Question: ")
		return strings.TrimSpace(q), userPrompt[i+len(marker):]
	}
	return strings.TrimSpace(strings.TrimPrefix(userPrompt, "Question: ")), userPrompt
}

func (o *OfflineProvider) Key() string { return KeyOffline }

func (o *OfflineProvider) DisplayName() string { return "Demo Mode (offline)" }
