package index

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"codequery/internal/chunker"
	"codequery/internal/provider"
	"codequery/pkg/types"
)

const (
	// DefaultSearchLimit caps results when the caller does not set one
	DefaultSearchLimit = 10

	// maxLoggedEmbedFailures caps per-chunk failure logging so a broken
	// provider cannot flood the log during a large indexing run
	maxLoggedEmbedFailures = 3
)

// SearchOptions restrict and bound a similarity query.
type SearchOptions struct {
	Language string // exact language match
	Folder   string // folder path prefix match
	Limit    int    // max results, DefaultSearchLimit when <= 0
}

// Index owns per-project files and embedded chunks and answers similarity
// queries against them.
type Index struct {
	store    Store
	provider provider.Provider
	chunker  *chunker.Chunker
	workers  int
	log      zerolog.Logger
}

// New creates an Index over the given store and active provider.
func New(store Store, prov provider.Provider, log zerolog.Logger) *Index {
	return &Index{
		store:    store,
		provider: prov,
		chunker:  chunker.New(),
		workers:  runtime.NumCPU(),
		log:      log,
	}
}

// SetWorkers overrides the embedding worker pool size.
func (ix *Index) SetWorkers(n int) {
	if n > 0 {
		ix.workers = n
	}
}

// IndexProject chunks and embeds every file, then publishes the project in a
// single store write. Per-chunk embedding failures drop the chunk and are
// tolerated without bound; only the first few are logged individually. The
// project is not visible to readers until indexing completes.
func (ix *Index) IndexProject(ctx context.Context, projectID string, files []*types.ParsedFile) (*types.IndexStats, error) {
	var allChunks []types.Chunk
	for _, f := range files {
		allChunks = append(allChunks, ix.chunker.Chunks(f)...)
	}

	var (
		mu       sync.Mutex
		embedded []types.EmbeddedChunk
		failed   atomic.Int32
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.workers)

	for _, ch := range allChunks {
		g.Go(func() error {
			vec, err := ix.provider.CreateEmbedding(gctx, ch.Content)
			if err != nil {
				n := failed.Add(1)
				if n <= maxLoggedEmbedFailures {
					ix.log.Warn().Err(err).
						Str("file", ch.FilePath).
						Int("start_line", ch.StartLine).
						Msg("chunk embedding failed, chunk omitted")
				}
				return nil
			}
			mu.Lock()
			embedded = append(embedded, types.EmbeddedChunk{Chunk: ch, Vector: vec})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("indexing project %s: %w", projectID, err)
	}

	if n := failed.Load(); n > maxLoggedEmbedFailures {
		ix.log.Warn().Int32("failed_chunks", n).Str("project", projectID).
			Msg("additional chunk embeddings failed")
	}

	stats := types.IndexStats{
		TotalFiles:  len(files),
		TotalChunks: len(embedded),
		Languages:   distinctLanguages(files),
	}

	ix.store.Put(&types.Project{
		ID:        projectID,
		Files:     files,
		Chunks:    embedded,
		Stats:     stats,
		Provider:  ix.provider.Key(),
		IndexedAt: time.Now(),
	})

	return &stats, nil
}

// Search embeds the query with the active provider and ranks every stored
// chunk by cosine similarity, applying the optional language and folder
// filters first. Results come back in non-increasing similarity order with
// insertion order breaking ties, capped at the limit, without vectors.
func (ix *Index) Search(ctx context.Context, projectID, query string, opts SearchOptions) ([]types.RankedChunk, error) {
	if strings.TrimSpace(query) == "" {
		return nil, types.ErrEmptyQuery
	}

	project, ok := ix.store.Get(projectID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrProjectNotFound, projectID)
	}

	queryVec, err := ix.provider.CreateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	type scored struct {
		chunk *types.EmbeddedChunk
		score float64
	}

	candidates := make([]scored, 0, len(project.Chunks))
	for i := range project.Chunks {
		ch := &project.Chunks[i]
		if opts.Language != "" && ch.Language != opts.Language {
			continue
		}
		if opts.Folder != "" && !strings.HasPrefix(ch.Folder, opts.Folder) {
			continue
		}
		candidates = append(candidates, scored{
			chunk: ch,
			score: clampScore(CosineSimilarity(queryVec, ch.Vector)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}

	results := make([]types.RankedChunk, 0, limit)
	for _, c := range candidates[:limit] {
		results = append(results, types.RankedChunk{
			FilePath:   c.chunk.FilePath,
			FileName:   c.chunk.FileName,
			StartLine:  c.chunk.StartLine,
			EndLine:    c.chunk.EndLine,
			Language:   c.chunk.Language,
			Folder:     c.chunk.Folder,
			Similarity: c.score,
			Content:    c.chunk.Content,
			IsSummary:  c.chunk.IsSummary,
		})
	}

	return results, nil
}

// Exists reports whether a project id is indexed.
func (ix *Index) Exists(projectID string) bool {
	_, ok := ix.store.Get(projectID)
	return ok
}

// Delete removes a project from the active set.
func (ix *Index) Delete(projectID string) error {
	if !ix.store.Delete(projectID) {
		return fmt.Errorf("%w: %s", types.ErrProjectNotFound, projectID)
	}
	return nil
}

// ListIDs returns the indexed project ids.
func (ix *Index) ListIDs() []string {
	return ix.store.List()
}

// Stats returns the summary statistics recorded at index time.
func (ix *Index) Stats(projectID string) (*types.IndexStats, error) {
	project, ok := ix.store.Get(projectID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrProjectNotFound, projectID)
	}
	stats := project.Stats
	return &stats, nil
}

// Files returns a project's parsed files.
func (ix *Index) Files(projectID string) ([]*types.ParsedFile, error) {
	project, ok := ix.store.Get(projectID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrProjectNotFound, projectID)
	}
	return project.Files, nil
}

// Project returns the full project record.
func (ix *Index) Project(projectID string) (*types.Project, error) {
	project, ok := ix.store.Get(projectID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrProjectNotFound, projectID)
	}
	return project, nil
}

func distinctLanguages(files []*types.ParsedFile) []string {
	seen := make(map[string]bool)
	var langs []string
	for _, f := range files {
		if !seen[f.Language] {
			seen[f.Language] = true
			langs = append(langs, f.Language)
		}
	}
	sort.Strings(langs)
	return langs
}
