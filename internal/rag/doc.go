// Package rag orchestrates question answering over an indexed project:
// similarity search, prompt context assembly, completion, and the derived
// references and confidence label.
package rag
