package types

import "time"

// IndexStats summarizes the outcome of indexing one project.
type IndexStats struct {
	TotalFiles  int      `json:"total_files"`
	TotalChunks int      `json:"total_chunks"`
	Languages   []string `json:"languages"`
}

// Project owns everything indexed under one opaque id. A project is either
// absent or fully indexed; it is never mutated in place — a new upload gets a
// new id.
type Project struct {
	ID        string
	Files     []*ParsedFile
	Chunks    []EmbeddedChunk
	Stats     IndexStats
	Provider  string // provider key active at index time
	IndexedAt time.Time
}

// File returns the parsed file with the given path, or nil.
func (p *Project) File(path string) *ParsedFile {
	for _, f := range p.Files {
		if f.Path == path {
			return f
		}
	}
	return nil
}
