package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codequery/internal/index"
	"codequery/internal/parser"
	"codequery/internal/provider"
	"codequery/pkg/types"
)

func newTestService(t *testing.T, prov provider.Provider) (*Service, *index.Index) {
	t.Helper()
	ix := index.New(index.NewMemoryStore(), prov, zerolog.Nop())
	return NewService(ix, prov, zerolog.Nop()), ix
}

func offlineProvider(t *testing.T) provider.Provider {
	t.Helper()
	prov, err := provider.New(provider.Config{Key: provider.KeyOffline}, zerolog.Nop())
	require.NoError(t, err)
	return prov
}

func indexProject(t *testing.T, ix *index.Index, projectID string, files map[string]string) {
	t.Helper()
	p := parser.New()
	var parsed []*types.ParsedFile
	for path, content := range files {
		parsed = append(parsed, p.Parse(path, []byte(content)))
	}
	_, err := ix.IndexProject(context.Background(), projectID, parsed)
	require.NoError(t, err)
}

func TestAnswer_DemoMode(t *testing.T) {
	svc, ix := newTestService(t, offlineProvider(t))
	indexProject(t, ix, "p1", map[string]string{
		"app.js": strings.Repeat("function add(a,b){return a+b}\n", 3),
	})

	answer, err := svc.Answer(context.Background(), "p1", "what does add do?", AnswerOptions{})
	require.NoError(t, err)

	assert.Contains(t, answer.Answer, "Demo Mode")
	assert.Contains(t, []types.Confidence{types.ConfidenceLow, types.ConfidenceMedium}, answer.Confidence)
	assert.Contains(t, answer.RelevantFiles, "app.js")
	assert.NotEmpty(t, answer.References)
	assert.Contains(t, answer.ProviderName, "Demo Mode")

	for _, ref := range answer.References {
		assert.GreaterOrEqual(t, ref.Similarity, 0)
		assert.LessOrEqual(t, ref.Similarity, 100)
		assert.LessOrEqual(t, len(strings.Split(ref.Preview, "\n")), ReferencePreviewLines)
		assert.Positive(t, ref.StartLine)
	}
}

// countingProvider records completion calls; embeddings use the offline scheme.
type countingProvider struct {
	completions int
	failWith    error
	reply       string
}

func (c *countingProvider) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if err := provider.ValidateText(text); err != nil {
		return nil, err
	}
	return provider.HashEmbedding(text), nil
}

func (c *countingProvider) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	c.completions++
	if c.failWith != nil {
		return "", c.failWith
	}
	return c.reply, nil
}

func (c *countingProvider) Key() string { return "stub" }

func (c *countingProvider) DisplayName() string { return "Stub" }

func TestAnswer_NoResultsSkipsCompletion(t *testing.T) {
	prov := &countingProvider{reply: "should not be used"}
	svc, ix := newTestService(t, prov)
	indexProject(t, ix, "p1", map[string]string{
		"app.js": "function add(a,b){return a+b}\n",
	})

	// Filter that matches nothing forces the empty-retrieval path
	answer, err := svc.Answer(context.Background(), "p1", "what does add do?", AnswerOptions{Language: "rust"})
	require.NoError(t, err)

	assert.Equal(t, NoResultsAnswer, answer.Answer)
	assert.Equal(t, types.ConfidenceLow, answer.Confidence)
	assert.Empty(t, answer.References)
	assert.Empty(t, answer.RelevantFiles)
	assert.Zero(t, prov.completions, "no completion call for an empty context")
}

func TestAnswer_GenerationFailure(t *testing.T) {
	prov := &countingProvider{failWith: errors.New("model unreachable")}
	svc, ix := newTestService(t, prov)
	indexProject(t, ix, "p1", map[string]string{
		"app.js": "function add(a,b){return a+b}\n",
	})

	_, err := svc.Answer(context.Background(), "p1", "what does add do?", AnswerOptions{})
	assert.ErrorIs(t, err, types.ErrGenerationFailed)
	assert.Equal(t, 1, prov.completions)
}

func TestAnswer_UnknownProject(t *testing.T) {
	svc, _ := newTestService(t, offlineProvider(t))
	_, err := svc.Answer(context.Background(), "missing", "anything?", AnswerOptions{})
	assert.ErrorIs(t, err, types.ErrProjectNotFound)
}

func TestAnswer_ContextBlocksRankOrdered(t *testing.T) {
	prov := &countingProvider{reply: "fine"}
	svc, ix := newTestService(t, prov)
	indexProject(t, ix, "p1", map[string]string{
		"app.js": "function add(a,b){return a+b}\n",
	})

	answer, err := svc.Answer(context.Background(), "p1", "add function", AnswerOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, answer.References)

	// References mirror the ranked order: non-increasing similarity
	for i := 1; i < len(answer.References); i++ {
		assert.GreaterOrEqual(t, answer.References[i-1].Similarity, answer.References[i].Similarity)
	}
	assert.LessOrEqual(t, len(answer.References), AnswerSearchLimit)
}

func TestExplainFile(t *testing.T) {
	svc, ix := newTestService(t, offlineProvider(t))
	indexProject(t, ix, "p1", map[string]string{
		"app.js": "function add(a,b){return a+b}\n",
	})

	explanation, err := svc.ExplainFile(context.Background(), "p1", "app.js")
	require.NoError(t, err)
	assert.NotEmpty(t, explanation.Explanation)
	assert.Equal(t, "app.js", explanation.File.Path)
	assert.Contains(t, explanation.ProviderName, "Demo Mode")
}

func TestExplainFile_MissingFile(t *testing.T) {
	prov := &countingProvider{reply: "should not be used"}
	svc, ix := newTestService(t, prov)
	indexProject(t, ix, "p1", map[string]string{
		"app.js": "function add(a,b){return a+b}\n",
	})

	_, err := svc.ExplainFile(context.Background(), "p1", "missing.js")
	assert.ErrorIs(t, err, types.ErrFileNotFound)
	assert.Zero(t, prov.completions, "lookup failures surface before any provider call")
}

func TestExplainFile_MissingProject(t *testing.T) {
	prov := &countingProvider{}
	svc, _ := newTestService(t, prov)

	_, err := svc.ExplainFile(context.Background(), "missing", "app.js")
	assert.ErrorIs(t, err, types.ErrProjectNotFound)
	assert.Zero(t, prov.completions)
}

func TestSuggestQuestions(t *testing.T) {
	svc, ix := newTestService(t, offlineProvider(t))
	indexProject(t, ix, "p1", map[string]string{
		"app.js":  "function add(a,b){return a+b}\n",
		"main.py": "def run():\n    pass\n",
	})

	questions, err := svc.SuggestQuestions(context.Background(), "p1")
	require.NoError(t, err)
	assert.NotEmpty(t, questions)
	assert.LessOrEqual(t, len(questions), MaxSuggestedQuestions)
}

func TestSuggestQuestions_EmptyProject(t *testing.T) {
	svc, ix := newTestService(t, offlineProvider(t))
	indexProject(t, ix, "empty", map[string]string{})

	questions, err := svc.SuggestQuestions(context.Background(), "empty")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestSuggestQuestions_MissingProject(t *testing.T) {
	svc, _ := newTestService(t, offlineProvider(t))
	_, err := svc.SuggestQuestions(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrProjectNotFound)
}

func TestBuildContext_Format(t *testing.T) {
	chunks := []types.RankedChunk{
		{FilePath: "a.js", StartLine: 1, EndLine: 50, Content: "first"},
		{FilePath: "b.js", StartLine: 41, EndLine: 90, Content: "second"},
	}

	block := buildContext(chunks)
	assert.Contains(t, block, "--- File: a.js (lines 1-50) ---\nfirst")
	assert.Contains(t, block, "--- File: b.js (lines 41-90) ---\nsecond")
	assert.Less(t, strings.Index(block, "a.js"), strings.Index(block, "b.js"))
}
