package cmd

import (
	"github.com/bluefalconink/chad/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd starts the MCP server over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Chad MCP server",
	Long: `Start a Model Context Protocol server exposing the audit pipeline
as tools over stdio: audit_fleet, classify_repo and service_costs.

The configured owner, token and call budget act as defaults for each tool
invocation; callers may override owner, extra orgs and the call ceiling per
request.

Examples:
  # Serve with config from .chad.yaml / env
  chad mcp

  # Serve with an explicit owner
  chad mcp --owner myuser`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
