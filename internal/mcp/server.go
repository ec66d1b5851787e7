package mcp

import (
	"github.com/cesarvarela/alpaca-mcp/internal/alpaca"
	"github.com/cesarvarela/alpaca-mcp/internal/config"
	"github.com/cesarvarela/alpaca-mcp/internal/logging"

	"github.com/mark3labs/mcp-go/server"
)

// Server identity reported during the MCP initialize handshake.
const (
	ServerName    = "alpaca-mcp"
	ServerVersion = "1.0.0"
)

// Server represents an MCP server instance exposing Alpaca tools.
type Server struct {
	cfg       *config.Config
	logger    *logging.AppLogger
	client    *alpaca.Client
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server with all Alpaca tools registered.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		client: alpaca.NewClient(cfg, logger),
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()

	return s
}

// Serve runs the server over the stdio transport until EOF or termination.
func (s *Server) Serve() error {
	s.logger.Info("Starting MCP server on stdio", "name", ServerName, "version", ServerVersion)
	return server.ServeStdio(s.mcpServer)
}
