// Package mcp exposes the engine over the Model Context Protocol on stdio.
// It is a thin collaborator: handlers translate tool arguments into engine
// calls and engine errors into protocol error codes.
package mcp
