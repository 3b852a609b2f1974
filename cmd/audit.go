package cmd

import (
	"time"

	"github.com/bluefalconink/chad/core"
	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/internal/outwriter"
	"github.com/spf13/cobra"
)

// auditCmd audits the whole fleet for the configured owner and orgs.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit every repo of the configured owner and orgs",
	Long: `Audit every repository of the configured owner plus any extra orgs.

Each repo is bucketed by staleness, scanned for third-party service usage,
checked for branding, architecture, secrets and workflow health, then
classified into a tier with a recommended action and a monthly burn estimate.

The scan stays within the API call budget: once the ceiling is reached the
remaining checks degrade to their defaults and the report is marked with the
number of calls actually used.

Examples:
  # Audit your own fleet
  chad audit --owner myuser

  # Include two orgs and raise the call ceiling
  chad audit --owner myuser --extra-orgs my-org,other-org --max-api-calls 600

  # Machine-readable output plus a saved report artifact
  chad audit --owner myuser --output json --report-file audit.json

  # Track history across runs in SQLite
  chad audit --owner myuser --history-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := contract.RequireOwner(cfg); err != nil {
			contract.LogFatal("Invalid configuration", err)
		}

		budget := contract.NewBudget(cfg.MaxAPICalls)
		client := contract.NewGitHubClient(cfg, budget)

		start := time.Now()
		report, err := core.RunAudit(rootCtx, cfg, client, budget, storeManager)
		if err != nil {
			contract.LogFatal("Audit failed", err)
		}
		duration := time.Since(start)

		writer := outwriter.NewOutWriter()
		if err := writer.WriteReport(report, cfg, duration); err != nil {
			contract.LogFatal("Failed to write report", err)
		}

		if cfg.ReportFile != "" {
			if err := outwriter.SaveReportFile(report, cfg.ReportFile); err != nil {
				contract.LogFatal("Failed to save report file", err)
			}
		}
	},
}
