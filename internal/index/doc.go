// Package index holds indexed projects and answers cosine-similarity
// queries over their embedded chunks. Projects are immutable once published;
// the store interface isolates retrieval logic from the backing storage.
package index
