package types

import "errors"

// Chunk represents a line-addressed slice of a file used as the unit of
// embedding and retrieval. Exactly one summary chunk exists per file; it
// covers the full line range and carries a synthetic description instead of
// the literal file text.
type Chunk struct {
	// Content
	Content string

	// Location (1-based, inclusive)
	StartLine int
	EndLine   int

	// Owning file metadata
	FilePath string
	FileName string
	Language string
	Folder   string

	IsSummary bool
}

// Validate checks basic chunk invariants.
func (c *Chunk) Validate() error {
	if c.Content == "" {
		return errors.New("chunk content cannot be empty")
	}
	if c.StartLine <= 0 || c.EndLine <= 0 {
		return errors.New("line numbers must be positive")
	}
	if c.StartLine > c.EndLine {
		return errors.New("start line must be before or equal to end line")
	}
	if c.FilePath == "" {
		return errors.New("file path is required")
	}
	return nil
}

// EmbeddedChunk is a chunk plus its vector representation. The vector is a
// write-path artifact: it never leaves the index.
type EmbeddedChunk struct {
	Chunk
	Vector []float32
}
