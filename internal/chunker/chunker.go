package chunker

import (
	"fmt"
	"strings"

	"codequery/pkg/types"
)

const (
	// WindowLines is the number of lines per windowed chunk
	WindowLines = 50

	// StrideLines is how far each window start advances; the difference
	// against WindowLines is the overlap carried across chunk boundaries
	StrideLines = 40

	// PreviewLines is the number of leading file lines quoted in the
	// summary chunk
	PreviewLines = 20
)

// Chunker splits files into overlapping line-ranged chunks plus one
// synthetic summary chunk per file.
type Chunker struct{}

// New creates a new Chunker instance
func New() *Chunker {
	return &Chunker{}
}

// Chunks produces the chunk sequence for a file: the summary chunk first,
// then 50-line windows starting every 40 lines. Windows whose text trims to
// nothing are skipped. Any non-empty file yields at least two chunks (summary
// plus one window).
func (c *Chunker) Chunks(file *types.ParsedFile) []types.Chunk {
	lines := strings.Split(file.Content, "\n")

	chunks := []types.Chunk{c.summaryChunk(file, lines)}

	for start := 0; start < len(lines); start += StrideLines {
		end := start + WindowLines
		if end > len(lines) {
			end = len(lines)
		}

		content := strings.Join(lines[start:end], "\n")
		if strings.TrimSpace(content) == "" {
			continue
		}

		chunks = append(chunks, types.Chunk{
			Content:   content,
			StartLine: start + 1,
			EndLine:   end,
			FilePath:  file.Path,
			FileName:  file.Name,
			Language:  file.Language,
			Folder:    file.Folder,
		})
	}

	return chunks
}

// summaryChunk builds the synthetic whole-file chunk: path, language, the
// detected structure list, and a preview of the first lines. It spans the
// full line range but does not contain the literal trailing file content.
func (c *Chunker) summaryChunk(file *types.ParsedFile, lines []string) types.Chunk {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s\n", file.Path)
	fmt.Fprintf(&b, "Language: %s\n", file.Language)

	if len(file.Structures) > 0 {
		b.WriteString("Code structures:\n")
		for _, s := range file.Structures {
			fmt.Fprintf(&b, "- %s %s (line %d)\n", s.Kind, s.Name, s.Line)
		}
	}

	b.WriteString("Content preview:\n")
	preview := lines
	if len(preview) > PreviewLines {
		preview = preview[:PreviewLines]
	}
	b.WriteString(strings.Join(preview, "\n"))

	endLine := len(lines)
	if endLine < 1 {
		endLine = 1
	}

	return types.Chunk{
		Content:   b.String(),
		StartLine: 1,
		EndLine:   endLine,
		FilePath:  file.Path,
		FileName:  file.Name,
		Language:  file.Language,
		Folder:    file.Folder,
		IsSummary: true,
	}
}
