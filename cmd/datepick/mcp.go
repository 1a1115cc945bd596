// ABOUTME: MCP server command for datepick CLI
// ABOUTME: Starts stdio-based MCP server for AI agent integration

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/datepick/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	Long: `Start the Model Context Protocol (MCP) server on stdio.

This lets AI agents render month grids and replay date selections
(single dates or ranges, with min/max bounds) through structured tools.

The server communicates via JSON-RPC on stdin/stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(time.Now, logger)

		if err := server.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
