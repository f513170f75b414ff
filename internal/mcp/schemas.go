package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// indexCodebaseTool returns the tool definition for index_codebase
func indexCodebaseTool() mcp.Tool {
	return mcp.Tool{
		Name:        "index_codebase",
		Description: "Index a local source tree so it can be searched and questioned",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the source tree root",
				},
			},
			Required: []string{"path"},
		},
	}
}

// askQuestionTool returns the tool definition for ask_question
func askQuestionTool() mcp.Tool {
	return mcp.Tool{
		Name:        "ask_question",
		Description: "Ask a natural-language question about an indexed project and get an answer with file/line references",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": map[string]interface{}{
					"type":        "string",
					"description": "Project id returned by index_codebase",
				},
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language question about the code",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Restrict retrieval to one language tag (e.g. 'go', 'javascript')",
				},
				"folder": map[string]interface{}{
					"type":        "string",
					"description": "Restrict retrieval to a folder path prefix",
				},
			},
			Required: []string{"project_id", "question"},
		},
	}
}

// searchCodeTool returns the tool definition for search_code
func searchCodeTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_code",
		Description: "Similarity-search an indexed project and return ranked chunks",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": map[string]interface{}{
					"type":        "string",
					"description": "Project id returned by index_codebase",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (natural language or keywords)",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Exact language tag filter",
				},
				"folder": map[string]interface{}{
					"type":        "string",
					"description": "Folder path prefix filter",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"project_id", "query"},
		},
	}
}

// explainFileTool returns the tool definition for explain_file
func explainFileTool() mcp.Tool {
	return mcp.Tool{
		Name:        "explain_file",
		Description: "Explain a single file from an indexed project",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": map[string]interface{}{
					"type":        "string",
					"description": "Project id returned by index_codebase",
				},
				"file_path": map[string]interface{}{
					"type":        "string",
					"description": "Relative path of the file inside the project",
				},
			},
			Required: []string{"project_id", "file_path"},
		},
	}
}

// suggestQuestionsTool returns the tool definition for suggest_questions
func suggestQuestionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "suggest_questions",
		Description: "Suggest starter questions for an indexed project",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": map[string]interface{}{
					"type":        "string",
					"description": "Project id returned by index_codebase",
				},
			},
			Required: []string{"project_id"},
		},
	}
}

// listProjectsTool returns the tool definition for list_projects
func listProjectsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_projects",
		Description: "List indexed project ids",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// projectStatsTool returns the tool definition for project_stats
func projectStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "project_stats",
		Description: "Return the summary statistics for an indexed project",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": map[string]interface{}{
					"type":        "string",
					"description": "Project id returned by index_codebase",
				},
			},
			Required: []string{"project_id"},
		},
	}
}

// deleteProjectTool returns the tool definition for delete_project
func deleteProjectTool() mcp.Tool {
	return mcp.Tool{
		Name:        "delete_project",
		Description: "Remove an indexed project from the active set",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": map[string]interface{}{
					"type":        "string",
					"description": "Project id returned by index_codebase",
				},
			},
			Required: []string{"project_id"},
		},
	}
}
