// Package types defines the shared domain model for the indexing and
// retrieval engine: parsed files, chunks, projects, search results, and the
// domain error set.
package types
