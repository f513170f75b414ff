package mcp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codequery/internal/parser"
	"codequery/pkg/types"
)

// Ingestion limits for the local-directory collaborator path.
const (
	maxFileBytes = 512 * 1024
	maxTreeFiles = 5000
)

var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
}

// loadTree reads a local source tree into ParsedFiles. This is collaborator
// glue, not engine logic: the engine only ever sees the parsed files.
func loadTree(root string) ([]*types.ParsedFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	p := parser.New()
	var files []*types.ParsedFile

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			if skippedDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(info.Name(), ".") || info.Size() > maxFileBytes {
			return nil
		}
		if len(files) >= maxTreeFiles {
			return filepath.SkipAll
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil // unreadable files are skipped, not fatal
		}
		if !isText(content) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, p.Parse(filepath.ToSlash(rel), content))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no readable source files under %s", root)
	}

	return files, nil
}

// isText rejects binary files by scanning the leading bytes for NULs.
func isText(content []byte) bool {
	n := len(content)
	if n > 1024 {
		n = 1024
	}
	for _, b := range content[:n] {
		if b == 0 {
			return false
		}
	}
	return true
}
