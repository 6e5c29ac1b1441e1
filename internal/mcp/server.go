package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/btouchard/taskboard/internal/notify"
	"github.com/btouchard/taskboard/internal/task"
)

// Deps holds shared dependencies injected into MCP handlers.
type Deps struct {
	Tasks   *task.Store
	Notify  *notify.Service
	Version string
}

// NewServer creates and configures the MCP server with all tools registered.
func NewServer(deps *Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"Taskboard",
		deps.Version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	registerTools(s, deps)

	return s
}
