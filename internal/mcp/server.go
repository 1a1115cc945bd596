// ABOUTME: MCP server implementation for datepick
// ABOUTME: Exposes calendar grids and click replay as tools for AI agents

package mcp

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with datepick-specific context
type Server struct {
	mcpServer *server.MCPServer
	now       func() time.Time
	logger    *log.Logger
}

// NewServer creates a new MCP server instance. A nil clock means time.Now,
// a nil logger discards output.
func NewServer(now func() time.Time, logger *log.Logger) *Server {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		now:    now,
		logger: logger,
	}

	s.mcpServer = server.NewMCPServer(
		"datepick",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerTools is implemented in tools.go
