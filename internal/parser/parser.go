package parser

import (
	"path"
	"strings"

	"codequery/pkg/types"
)

// Parser turns raw file bytes into ParsedFile values: language detection by
// extension plus a best-effort structure scan. It never rejects a file.
type Parser struct{}

// New creates a new Parser instance
func New() *Parser {
	return &Parser{}
}

var languageByExtension = map[string]string{
	".go":    "go",
	".js":    "javascript",
	".jsx":   "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".rb":    "ruby",
	".java":  "java",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".rs":    "rust",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".sh":    "shell",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".scss":  "css",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
	".md":    "markdown",
	".vue":   "vue",
}

// DetectLanguage maps a file extension to a language tag.
// Unknown extensions are tagged "plaintext".
func DetectLanguage(ext string) string {
	if lang, ok := languageByExtension[strings.ToLower(ext)]; ok {
		return lang
	}
	return "plaintext"
}

// Parse builds a ParsedFile from a relative path and raw content.
func (p *Parser) Parse(relPath string, content []byte) *types.ParsedFile {
	text := string(content)
	ext := path.Ext(relPath)
	folder := path.Dir(relPath)
	if folder == "." {
		folder = ""
	}

	lines := strings.Split(text, "\n")

	return &types.ParsedFile{
		Path:       relPath,
		Name:       path.Base(relPath),
		Extension:  ext,
		Content:    text,
		LineCount:  len(lines),
		Size:       len(content),
		Language:   DetectLanguage(ext),
		Folder:     folder,
		Structures: ScanStructures(text),
	}
}
