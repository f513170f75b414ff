package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codequery/internal/parser"
)

func TestChunks_ShortFile(t *testing.T) {
	p := parser.New()
	file := p.Parse("main.go", []byte("package main\n\nfunc main() {}\n"))

	c := New()
	chunks := c.Chunks(file)

	// One summary chunk plus one window covering the whole file
	require.Len(t, chunks, 2)
	assert.True(t, chunks[0].IsSummary)
	assert.False(t, chunks[1].IsSummary)
	assert.Equal(t, 1, chunks[1].StartLine)
	assert.Equal(t, file.LineCount, chunks[1].EndLine)
}

func TestChunks_WindowRanges(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "line content"
	}
	p := parser.New()
	file := p.Parse("big.txt", []byte(strings.Join(lines, "\n")))
	require.Equal(t, 100, file.LineCount)

	c := New()
	chunks := c.Chunks(file)

	// Summary plus windows 1-50, 41-90, 81-100
	require.Len(t, chunks, 4)
	assert.True(t, chunks[0].IsSummary)

	type window struct{ start, end int }
	var got []window
	for _, ch := range chunks[1:] {
		got = append(got, window{ch.StartLine, ch.EndLine})
	}
	assert.Equal(t, []window{{1, 50}, {41, 90}, {81, 100}}, got)
}

func TestChunks_FiveLineFile(t *testing.T) {
	p := parser.New()
	file := p.Parse("small.py", []byte("a = 1\nb = 2\nc = 3\nd = 4\ne = 5"))

	chunks := New().Chunks(file)

	require.Len(t, chunks, 2)
	assert.Equal(t, 1, chunks[1].StartLine)
	assert.Equal(t, 5, chunks[1].EndLine)
}

func TestChunks_BlankWindowsSkipped(t *testing.T) {
	// 40 real lines followed by 60 blank lines: the second and third window
	// positions are blank or partially blank
	content := strings.Repeat("x\n", 40) + strings.Repeat("\n", 60)
	p := parser.New()
	file := p.Parse("sparse.txt", []byte(content))

	chunks := New().Chunks(file)

	for _, ch := range chunks[1:] {
		assert.NotEmpty(t, strings.TrimSpace(ch.Content), "window %d-%d should not be blank", ch.StartLine, ch.EndLine)
	}
}

func TestChunks_OverlapPreserved(t *testing.T) {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = strings.Repeat("a", i+1) // unique per line
	}
	p := parser.New()
	file := p.Parse("f.txt", []byte(strings.Join(lines, "\n")))

	chunks := New().Chunks(file)
	require.Len(t, chunks, 3) // summary + 2 windows

	first, second := chunks[1], chunks[2]
	assert.Equal(t, 41, second.StartLine)
	assert.Equal(t, 50, first.EndLine)

	// Lines 41-50 appear in both windows
	overlap := strings.Join(lines[40:50], "\n")
	assert.Contains(t, first.Content, overlap)
	assert.Contains(t, second.Content, overlap)
}

func TestSummaryChunk_Content(t *testing.T) {
	content := "export function greet(name) {\n  return 'hi ' + name\n}\n"
	p := parser.New()
	file := p.Parse("src/greet.js", []byte(content))

	chunks := New().Chunks(file)
	summary := chunks[0]

	assert.True(t, summary.IsSummary)
	assert.Contains(t, summary.Content, "File: src/greet.js")
	assert.Contains(t, summary.Content, "Language: javascript")
	assert.Contains(t, summary.Content, "Code structures:")
	assert.Contains(t, summary.Content, "function greet (line 1)")
	assert.Contains(t, summary.Content, "Content preview:")
	assert.Equal(t, 1, summary.StartLine)
	assert.Equal(t, file.LineCount, summary.EndLine)
	assert.Equal(t, "src", summary.Folder)
}

func TestSummaryChunk_PreviewBounded(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "filler"
	}
	lines[20] = "BEYOND_PREVIEW"
	p := parser.New()
	file := p.Parse("long.txt", []byte(strings.Join(lines, "\n")))

	summary := New().Chunks(file)[0]

	assert.NotContains(t, summary.Content, "BEYOND_PREVIEW")
}
