package types

// StructureKind classifies a detected code structure
type StructureKind string

const (
	StructureFunction      StructureKind = "function"
	StructureClass         StructureKind = "class"
	StructureInterface     StructureKind = "interface"
	StructureType          StructureKind = "type"
	StructureComponent     StructureKind = "component"
	StructureArrowFunction StructureKind = "arrow-function"
)

// CodeStructure is an advisory annotation produced by best-effort pattern
// scanning. It is never required for search correctness.
type CodeStructure struct {
	Kind StructureKind
	Name string
	Line int // 1-based
	Text string
}

// ParsedFile is one source file as ingested into a project.
// It is immutable after creation.
type ParsedFile struct {
	// Identification
	Path      string // relative path, unique within a project
	Name      string
	Extension string

	// Content
	Content   string
	LineCount int
	Size      int // bytes

	// Metadata
	Language   string
	Folder     string // parent path, "" for root-level files
	Structures []CodeStructure
}
