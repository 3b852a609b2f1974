// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Chad MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Chad Fleet Audit Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: audit_fleet ---
	s.AddTool(mcp.NewTool("audit_fleet",
		mcp.WithDescription("Audit every repository of the configured owner and orgs: staleness, tier classification, cost estimate and compliance checks."),
		mcp.WithString("owner", mcp.Description("GitHub user to audit (defaults to the configured owner).")),
		mcp.WithString("extra_orgs", mcp.Description("Comma-separated additional orgs to include in the scan.")),
		mcp.WithNumber("max_api_calls", mcp.Description("Ceiling on GitHub API calls for this run.")),
	), h.handleAuditFleet)

	// --- 2. Tool: classify_repo ---
	s.AddTool(mcp.NewTool("classify_repo",
		mcp.WithDescription("Classify a single repository: staleness bucket, tier, recommended action and monthly burn estimate."),
		mcp.WithString("owner", mcp.Description("Owner of the repository."), mcp.Required()),
		mcp.WithString("repo", mcp.Description("Name of the repository."), mcp.Required()),
	), h.handleClassifyRepo)

	// --- 3. Tool: service_costs ---
	s.AddTool(mcp.NewTool("service_costs",
		mcp.WithDescription("Return the static third-party service cost table used for burn estimates."),
	), h.handleServiceCosts)

	return s
}

// StartMCPServer starts the Chad MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
