package types

import "errors"

// Domain errors. Callers classify failures with errors.Is; messages wrapped
// at the call site carry the human-readable detail.
var (
	// ErrProjectNotFound is returned for queries against an unindexed or
	// deleted project id.
	ErrProjectNotFound = errors.New("project not found")

	// ErrFileNotFound is returned for lookups against a path absent from the
	// project's file list.
	ErrFileNotFound = errors.New("file not found in project")

	// ErrGenerationFailed is returned when a completion provider could not
	// produce an answer. It is fatal to the current request only.
	ErrGenerationFailed = errors.New("answer generation failed")

	// ErrEmptyQuery is returned when a search or question is blank.
	ErrEmptyQuery = errors.New("query cannot be empty")
)
