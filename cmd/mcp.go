/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// mcp.go implements the "sift mcp" command, starting the MCP server.

package cmd

import (
	"github.com/jpl-au/sift/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio transport)",
	Long: `Start the Model Context Protocol server over stdio, exposing search,
smart lists, facets, and history to LLM clients such as Claude Desktop.

Add to your MCP client configuration:

  {
    "mcpServers": {
      "sift": {
        "command": "sift",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.Serve(DataPath(), DBPath())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
