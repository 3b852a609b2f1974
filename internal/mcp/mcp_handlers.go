package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bluefalconink/chad/core"
	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleAuditFleet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if o := request.GetString("owner", ""); o != "" {
		cfg.Owner = o
	}
	if orgs := request.GetString("extra_orgs", ""); orgs != "" {
		cfg.ExtraOrgs = nil
		for _, org := range strings.Split(orgs, ",") {
			if org = strings.TrimSpace(org); org != "" {
				cfg.ExtraOrgs = append(cfg.ExtraOrgs, org)
			}
		}
	}
	if m := request.GetInt("max_api_calls", 0); m > 0 {
		cfg.MaxAPICalls = m
	}

	if err := contract.RequireOwner(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid audit parameters: %v", err)), nil
	}

	budget := contract.NewBudget(cfg.MaxAPICalls)
	client := contract.NewGitHubClient(cfg, budget)

	report, err := core.RunAudit(core.WithSuppressProgress(ctx), cfg, client, budget, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("audit failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyRepo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	owner := request.GetString("owner", "")
	repo := request.GetString("repo", "")
	if owner == "" || repo == "" {
		return mcp.NewToolResultError("owner and repo are required"), nil
	}

	cfg := h.baseCfg.Clone()
	if err := contract.RequireOwner(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid configuration: %v", err)), nil
	}

	budget := contract.NewBudget(cfg.MaxAPICalls)
	client := contract.NewGitHubClient(cfg, budget)

	rec, err := client.GetRepo(ctx, owner, repo)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch repo %s/%s: %v", owner, repo, err)), nil
	}

	audit := core.AuditRepo(core.WithSuppressProgress(ctx), cfg, client, rec)
	jsonData, _ := json.MarshalIndent(audit, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleServiceCosts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type costEntry struct {
		Service  string `json:"service"`
		Label    string `json:"label"`
		Category string `json:"category"`
		Cost     int    `json:"monthly_cost"`
	}

	entries := make([]costEntry, 0, len(schema.ServiceCosts))
	for key, info := range schema.ServiceCosts {
		entries = append(entries, costEntry{
			Service:  key,
			Label:    info.Label,
			Category: info.Category,
			Cost:     info.Cost,
		})
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
