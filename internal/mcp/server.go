package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"codequery/internal/index"
	"codequery/internal/provider"
	"codequery/internal/rag"
)

const (
	// ServerName is the MCP server name
	ServerName = "codequery"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the engine dependencies. It is the thin
// collaborator layer: handlers only translate between tool arguments and the
// engine's operations.
type Server struct {
	mcp     *server.MCPServer
	index   *index.Index
	service *rag.Service
	log     zerolog.Logger
}

// NewServer creates an MCP server over an already-wired engine.
func NewServer(ix *index.Index, service *rag.Service, prov provider.Provider, log zerolog.Logger) *Server {
	mcpServer := server.NewMCPServer(ServerName, ServerVersion)

	s := &Server{
		mcp:     mcpServer,
		index:   ix,
		service: service,
		log:     log.With().Str("provider", prov.Key()).Logger(),
	}

	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(indexCodebaseTool(), s.handleIndexCodebase)
	s.mcp.AddTool(askQuestionTool(), s.handleAskQuestion)
	s.mcp.AddTool(searchCodeTool(), s.handleSearchCode)
	s.mcp.AddTool(explainFileTool(), s.handleExplainFile)
	s.mcp.AddTool(suggestQuestionsTool(), s.handleSuggestQuestions)
	s.mcp.AddTool(listProjectsTool(), s.handleListProjects)
	s.mcp.AddTool(projectStatsTool(), s.handleProjectStats)
	s.mcp.AddTool(deleteProjectTool(), s.handleDeleteProject)
}
