package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/pages"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that lets agents browse the portfolio pages.
// Every tool call opens a fresh view, so calls never share selection state.
type Server struct {
	env    pages.Env
	logger *zap.Logger
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server reading page data through env.
func NewServer(env pages.Env, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if env.Logger == nil {
		env.Logger = logger
	}
	s := &Server{
		env:    env,
		logger: logger,
	}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPagesTool, s.handleListPages)
	s.mcp.AddTool(selectRecordsTool, s.handleSelectRecords)
	s.mcp.AddTool(renderPageTool, s.handleRenderPage)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
