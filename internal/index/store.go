package index

import (
	"sort"
	"sync"

	"codequery/pkg/types"
)

// Store holds indexed projects keyed by id. The interface is the seam for a
// durable backend; retrieval logic depends only on these four operations.
type Store interface {
	Get(id string) (*types.Project, bool)
	Put(project *types.Project)
	Delete(id string) bool
	List() []string
}

// MemoryStore is the in-memory Store. A project appears only once fully
// indexed (single Put) and disappears atomically on Delete, so readers see a
// project either absent or complete.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]*types.Project
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]*types.Project)}
}

func (s *MemoryStore) Get(id string) (*types.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	return p, ok
}

func (s *MemoryStore) Put(project *types.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = project
}

func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.projects[id]
	delete(s.projects, id)
	return ok
}

func (s *MemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.projects))
	for id := range s.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
