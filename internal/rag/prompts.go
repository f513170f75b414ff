package rag

import (
	"fmt"
	"strings"

	"codequery/pkg/types"
)

const answerSystemPrompt = `You are a code assistant answering questions about an indexed codebase using the retrieved source context provided with each question.

Always cite the specific files and line ranges your answer relies on. Be explicit about uncertainty: if the context does not contain enough information to answer, say so instead of guessing. Keep answers concise and grounded in the provided context.`

const explainSystemPrompt = `You are a code assistant. Explain what the given source file does: its purpose, its main structures, and how it fits into a codebase. Cite line numbers for anything specific. Be explicit about uncertainty.`

// NoResultsAnswer is the fixed response when retrieval finds nothing; no
// completion call is made for an empty context.
const NoResultsAnswer = "I couldn't find any code relevant to that question in this project. Try rephrasing the question or removing the language/folder filters."

// buildContext concatenates retrieved chunks, in rank order, into the prompt
// context block. Order is preserved as ranked; there is no re-ranking here.
func buildContext(chunks []types.RankedChunk) string {
	var b strings.Builder
	for _, c := range chunks {
		fmt.Fprintf(&b, "--- File: %s (lines %d-%d) ---\n%s\n\n", c.FilePath, c.StartLine, c.EndLine, c.Content)
	}
	return b.String()
}

// buildUserPrompt embeds the question and the built context. The offline
// provider parses file markers back out of this exact layout.
func buildUserPrompt(question, contextBlock string) string {
	return fmt.Sprintf("Question: %s\n\nContext:\n%s", question, contextBlock)
}

func buildExplainPrompt(file *types.ParsedFile, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\nLanguage: %s\nLines: %d\n", file.Path, file.Language, file.LineCount)
	if len(file.Structures) > 0 {
		b.WriteString("Detected structures:\n")
		for _, s := range file.Structures {
			fmt.Fprintf(&b, "- %s %s (line %d)\n", s.Kind, s.Name, s.Line)
		}
	}
	b.WriteString("\nContent:\n")
	b.WriteString(content)
	return b.String()
}
