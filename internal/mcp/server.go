// ABOUTME: MCP server setup for the gym tracker store.
// ABOUTME: Scopes every tool to the user resolved at construction time.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nirvana/gymtrack/internal/storage"
)

// Server wraps the MCP server with storage access for one user.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	username  string
}

// NewServer creates an MCP server bound to the logged-in user. The username
// is an explicit constructor argument so the tools never consult ambient
// login state.
func NewServer(repo storage.Repository, username string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gymtrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		username:  username,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
