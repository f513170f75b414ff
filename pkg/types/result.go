package types

// RankedChunk is one similarity search result. The underlying vector is
// intentionally absent.
type RankedChunk struct {
	FilePath   string  `json:"file_path"`
	FileName   string  `json:"file_name"`
	StartLine  int     `json:"start_line"`
	EndLine    int     `json:"end_line"`
	Language   string  `json:"language"`
	Folder     string  `json:"folder"`
	Similarity float64 `json:"similarity"` // in [0,1]
	Content    string  `json:"content"`
	IsSummary  bool    `json:"is_summary"`
}

// Confidence is a coarse label derived from the top retrieved chunk's
// similarity score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceForScore maps a top similarity score to a confidence label.
func ConfidenceForScore(score float64) Confidence {
	switch {
	case score > 0.8:
		return ConfidenceHigh
	case score > 0.6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Reference points an answer back at a specific retrieved chunk.
type Reference struct {
	FilePath   string `json:"file_path"`
	FileName   string `json:"file_name"`
	StartLine  int    `json:"start_line"`
	EndLine    int    `json:"end_line"`
	Language   string `json:"language"`
	Folder     string `json:"folder"`
	Similarity int    `json:"similarity"` // integer percentage
	Preview    string `json:"preview"`    // first 5 lines of the chunk
	IsSummary  bool   `json:"is_summary"`
}

// Answer is the result of a question against an indexed project.
type Answer struct {
	Answer        string      `json:"answer"`
	References    []Reference `json:"references"`
	Confidence    Confidence  `json:"confidence"`
	RelevantFiles []string    `json:"relevant_files"`
	ProviderName  string      `json:"provider_name"`
}

// FileExplanation is the result of explaining a single project file.
type FileExplanation struct {
	Explanation  string      `json:"explanation"`
	File         *ParsedFile `json:"-"`
	ProviderName string      `json:"provider_name"`
}
