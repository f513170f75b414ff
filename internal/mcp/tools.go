package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"codequery/internal/index"
	"codequery/internal/rag"
	"codequery/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeProjectNotFound  = -32001 // Unknown project id
	ErrorCodeFileNotFound     = -32002 // File path not in project
	ErrorCodeGenerationFailed = -32003 // Completion provider failed
)

// handleIndexCodebase walks a local source tree, parses its files, and
// indexes them under a fresh project id.
func (s *Server) handleIndexCodebase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	files, err := loadTree(path)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "cannot read source tree", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	projectID := uuid.NewString()
	stats, err := s.index.IndexProject(ctx, projectID, files)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "indexing failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.log.Info().Str("project", projectID).Int("files", stats.TotalFiles).
		Int("chunks", stats.TotalChunks).Msg("project indexed")

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"project_id":   projectID,
		"total_files":  stats.TotalFiles,
		"total_chunks": stats.TotalChunks,
		"languages":    stats.Languages,
	})), nil
}

func (s *Server) handleAskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	projectID, question := stringArg(args, "project_id"), stringArg(args, "question")
	if projectID == "" || question == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "project_id and question are required", nil)
	}

	answer, err := s.service.Answer(ctx, projectID, question, rag.AnswerOptions{
		Language: stringArg(args, "language"),
		Folder:   stringArg(args, "folder"),
	})
	if err != nil {
		return nil, engineError(err)
	}

	return mcp.NewToolResultText(formatJSON(answer)), nil
}

func (s *Server) handleSearchCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	projectID, query := stringArg(args, "project_id"), stringArg(args, "query")
	if projectID == "" || query == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "project_id and query are required", nil)
	}

	limit := intArg(args, "limit", index.DefaultSearchLimit)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	results, err := s.index.Search(ctx, projectID, query, index.SearchOptions{
		Language: stringArg(args, "language"),
		Folder:   stringArg(args, "folder"),
		Limit:    limit,
	})
	if err != nil {
		return nil, engineError(err)
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"results": results,
		"count":   len(results),
	})), nil
}

func (s *Server) handleExplainFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	projectID, filePath := stringArg(args, "project_id"), stringArg(args, "file_path")
	if projectID == "" || filePath == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "project_id and file_path are required", nil)
	}

	explanation, err := s.service.ExplainFile(ctx, projectID, filePath)
	if err != nil {
		return nil, engineError(err)
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"explanation":   explanation.Explanation,
		"file_path":     explanation.File.Path,
		"language":      explanation.File.Language,
		"line_count":    explanation.File.LineCount,
		"provider_name": explanation.ProviderName,
	})), nil
}

func (s *Server) handleSuggestQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	projectID := stringArg(args, "project_id")
	if projectID == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "project_id is required", nil)
	}

	questions, err := s.service.SuggestQuestions(ctx, projectID)
	if err != nil {
		return nil, engineError(err)
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"questions": questions,
	})), nil
}

func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"project_ids": s.index.ListIDs(),
	})), nil
}

func (s *Server) handleProjectStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	projectID := stringArg(args, "project_id")
	if projectID == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "project_id is required", nil)
	}

	stats, err := s.index.Stats(projectID)
	if err != nil {
		return nil, engineError(err)
	}

	return mcp.NewToolResultText(formatJSON(stats)), nil
}

func (s *Server) handleDeleteProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	projectID := stringArg(args, "project_id")
	if projectID == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "project_id is required", nil)
	}

	if err := s.index.Delete(projectID); err != nil {
		return nil, engineError(err)
	}

	s.log.Info().Str("project", projectID).Msg("project deleted")

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"deleted":    true,
		"project_id": projectID,
	})), nil
}

// Helper functions

// engineError maps domain errors to MCP error codes.
func engineError(err error) error {
	switch {
	case errors.Is(err, types.ErrProjectNotFound):
		return newMCPError(ErrorCodeProjectNotFound, err.Error(), nil)
	case errors.Is(err, types.ErrFileNotFound):
		return newMCPError(ErrorCodeFileNotFound, err.Error(), nil)
	case errors.Is(err, types.ErrGenerationFailed):
		return newMCPError(ErrorCodeGenerationFailed, err.Error(), nil)
	case errors.Is(err, types.ErrEmptyQuery):
		return newMCPError(ErrorCodeInvalidParams, err.Error(), nil)
	default:
		return newMCPError(ErrorCodeInternalError, err.Error(), nil)
	}
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

func stringArg(args map[string]interface{}, name string) string {
	v, _ := args[name].(string)
	return v
}

func intArg(args map[string]interface{}, name string, fallback int) int {
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return fallback
}

func formatJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
