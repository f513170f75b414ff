package parser

import (
	"regexp"
	"strings"

	"codequery/pkg/types"
)

// Structure scanning is a line-oriented pattern match, not a language parser.
// Annotations are advisory: they feed summary chunks and suggested questions,
// and a miss never affects search correctness.

type structurePattern struct {
	kind types.StructureKind
	re   *regexp.Regexp
}

// Order matters: the first matching pattern on a line wins, so the more
// specific component/arrow forms come before the generic ones.
var structurePatterns = []structurePattern{
	// React-style components: capitalized function or const rendering something.
	{types.StructureComponent, regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?function\s+([A-Z][A-Za-z0-9_]*)\s*\([^)]*\)\s*(?::\s*JSX)?`)},
	{types.StructureArrowFunction, regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(?:async\s+)?\([^)]*\)\s*(?::\s*[^=]+)?=>`)},
	{types.StructureArrowFunction, regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(?:async\s+)?[A-Za-z_][A-Za-z0-9_]*\s*=>`)},
	{types.StructureFunction, regexp.MustCompile(`^\s*(?:export\s+)?(?:async\s+)?function\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{types.StructureFunction, regexp.MustCompile(`^\s*func\s+(?:\([^)]+\)\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*\(`)},
	{types.StructureFunction, regexp.MustCompile(`^\s*(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)},
	{types.StructureClass, regexp.MustCompile(`^\s*(?:export\s+)?(?:abstract\s+)?class\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{types.StructureInterface, regexp.MustCompile(`^\s*(?:export\s+)?interface\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{types.StructureInterface, regexp.MustCompile(`^\s*type\s+([A-Za-z_][A-Za-z0-9_]*)\s+interface\b`)},
	{types.StructureType, regexp.MustCompile(`^\s*(?:export\s+)?type\s+([A-Za-z_][A-Za-z0-9_]*)`)},
}

// ScanStructures runs the pattern set over every line of the file and
// collects advisory annotations with their 1-based line numbers.
func ScanStructures(content string) []types.CodeStructure {
	var structures []types.CodeStructure

	for i, line := range strings.Split(content, "\n") {
		for _, p := range structurePatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			structures = append(structures, types.CodeStructure{
				Kind: p.kind,
				Name: m[1],
				Line: i + 1,
				Text: strings.TrimSpace(line),
			})
			break
		}
	}

	return structures
}
