// ABOUTME: CLI command exposing gym data to AI assistants over MCP stdio.
// ABOUTME: Tools are scoped to the logged-in user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nirvana/gymtrack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout so AI assistants
can read routines, workout history, daily stats, and measurements, and
log new measurements. All tools operate as the logged-in user.

Example client configuration:

  {
    "mcpServers": {
      "gymtrack": { "command": "gymtrack", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		srv, err := mcp.NewServer(repo, username)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return srv.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
