package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/plugval/internal/domain"
)

// NewPlugvalMCPServer creates an MCP server with all plugval tools and
// resources registered. Sessions opened through it start from cfg.
func NewPlugvalMCPServer(cfg domain.ProjectConfig) *server.MCPServer {
	return newServer(NewHost(cfg))
}

func newServer(host *Host) *server.MCPServer {
	s := server.NewMCPServer(
		"plugval",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, host)
	registerResources(s, host)

	return s
}
