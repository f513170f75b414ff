package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"codequery/internal/index"
	"codequery/internal/provider"
	"codequery/pkg/types"
)

const (
	// AnswerSearchLimit is how many chunks feed the completion context
	AnswerSearchLimit = 8

	// ReferencePreviewLines is the length of each reference's content preview
	ReferencePreviewLines = 5

	// MaxSuggestedQuestions caps the suggested-question list
	MaxSuggestedQuestions = 8

	// maxExplainContentBytes bounds file content sent to a completion call
	maxExplainContentBytes = 6000
)

// AnswerOptions carries the caller-supplied retrieval filters.
type AnswerOptions struct {
	Language string
	Folder   string
}

// Service orchestrates retrieval and answering: search, context assembly,
// completion, reference and confidence derivation.
type Service struct {
	index    *index.Index
	provider provider.Provider
	log      zerolog.Logger
}

// NewService creates the retrieval service over an index and the active
// provider.
func NewService(ix *index.Index, prov provider.Provider, log zerolog.Logger) *Service {
	return &Service{index: ix, provider: prov, log: log}
}

// Answer retrieves the most relevant chunks for a question and asks the
// completion provider for an answer grounded in them. With zero retrieved
// chunks it short-circuits to a fixed low-confidence response without
// spending a completion call.
func (s *Service) Answer(ctx context.Context, projectID, question string, opts AnswerOptions) (*types.Answer, error) {
	chunks, err := s.index.Search(ctx, projectID, question, index.SearchOptions{
		Language: opts.Language,
		Folder:   opts.Folder,
		Limit:    AnswerSearchLimit,
	})
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return &types.Answer{
			Answer:        NoResultsAnswer,
			References:    []types.Reference{},
			Confidence:    types.ConfidenceLow,
			RelevantFiles: []string{},
			ProviderName:  s.provider.DisplayName(),
		}, nil
	}

	userPrompt := buildUserPrompt(question, buildContext(chunks))

	text, err := s.provider.GenerateCompletion(ctx, answerSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrGenerationFailed, err)
	}

	return &types.Answer{
		Answer:        text,
		References:    buildReferences(chunks),
		Confidence:    types.ConfidenceForScore(chunks[0].Similarity),
		RelevantFiles: distinctFiles(chunks),
		ProviderName:  s.provider.DisplayName(),
	}, nil
}

// ExplainFile asks the completion provider to explain one project file.
// Lookup failures surface before any provider call.
func (s *Service) ExplainFile(ctx context.Context, projectID, filePath string) (*types.FileExplanation, error) {
	project, err := s.index.Project(projectID)
	if err != nil {
		return nil, err
	}

	file := project.File(filePath)
	if file == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrFileNotFound, filePath)
	}

	content := file.Content
	if len(content) > maxExplainContentBytes {
		content = content[:maxExplainContentBytes]
	}

	text, err := s.provider.GenerateCompletion(ctx, explainSystemPrompt, buildExplainPrompt(file, content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrGenerationFailed, err)
	}

	return &types.FileExplanation{
		Explanation:  text,
		File:         file,
		ProviderName: s.provider.DisplayName(),
	}, nil
}

// SuggestQuestions derives starter questions from what was detected at index
// time. Purely advisory; empty only for a project with zero files.
func (s *Service) SuggestQuestions(ctx context.Context, projectID string) ([]string, error) {
	project, err := s.index.Project(projectID)
	if err != nil {
		return nil, err
	}

	if len(project.Files) == 0 {
		return []string{}, nil
	}

	questions := []string{
		"What does this codebase do overall?",
		"How is the code organized across folders?",
	}

	for _, lang := range project.Stats.Languages {
		if lang == "plaintext" {
			continue
		}
		questions = append(questions, fmt.Sprintf("What is the %s code responsible for?", lang))
		if len(questions) >= MaxSuggestedQuestions {
			return questions[:MaxSuggestedQuestions], nil
		}
	}

	for _, f := range project.Files {
		for _, st := range f.Structures {
			if st.Kind != types.StructureFunction && st.Kind != types.StructureClass {
				continue
			}
			questions = append(questions, fmt.Sprintf("What does %s in %s do?", st.Name, f.Path))
			if len(questions) >= MaxSuggestedQuestions {
				return questions[:MaxSuggestedQuestions], nil
			}
			break // one structure question per file keeps the list varied
		}
	}

	return questions, nil
}

func buildReferences(chunks []types.RankedChunk) []types.Reference {
	refs := make([]types.Reference, 0, len(chunks))
	for _, c := range chunks {
		refs = append(refs, types.Reference{
			FilePath:   c.FilePath,
			FileName:   c.FileName,
			StartLine:  c.StartLine,
			EndLine:    c.EndLine,
			Language:   c.Language,
			Folder:     c.Folder,
			Similarity: int(c.Similarity*100 + 0.5),
			Preview:    previewLines(c.Content, ReferencePreviewLines),
			IsSummary:  c.IsSummary,
		})
	}
	return refs
}

func distinctFiles(chunks []types.RankedChunk) []string {
	seen := make(map[string]bool)
	var files []string
	for _, c := range chunks {
		if !seen[c.FilePath] {
			seen[c.FilePath] = true
			files = append(files, c.FilePath)
		}
	}
	return files
}

func previewLines(content string, n int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
