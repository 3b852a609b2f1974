// Package cmd contains all the CLI commands for the chad binary.
package cmd

import (
	"github.com/bluefalconink/chad/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags available to all commands. Viper binds them by name, so
	// each flag can also come from .chad.yaml or a CHAD_* env var.
	pf := rootCmd.PersistentFlags()
	pf.String("owner", "", "GitHub user whose fleet is audited")
	pf.String("extra-orgs", "", "Comma-separated additional orgs to scan")
	pf.String("token", "", "GitHub API token (prefer GITHUB_TOKEN env var)")
	pf.String("api-base", contract.DefaultAPIBase, "GitHub API base URL")
	pf.Int("max-api-calls", contract.DefaultMaxAPICalls, "Ceiling on GitHub API calls per run")
	pf.Int("workers", contract.DefaultWorkers, "Number of concurrent repo auditors")
	pf.String("timeout", "30s", "Per-request timeout (e.g. 30s, 2m)")
	pf.String("output", "text", "Output mode: text, csv or json")
	pf.String("output-file", "", "Write output to file instead of stdout")
	pf.String("report-file", "", "Also save the full JSON report to this path")
	pf.Int("width", 0, "Terminal width override for table output")
	pf.String("color", "yes", "Colorize table output: yes or no")
	pf.StringSlice("core-repos", nil, "Repo names always classified CORE")
	pf.String("history-backend", "", "History backend: sqlite, mysql, postgresql or none")
	pf.String("history-db-connect", "", "Connection string for mysql/postgresql history backends")
	pf.String("profile", "", "Enable profiling with the given file prefix")
	pf.String("config", "", "Config file (default is ./.chad.yaml or $HOME/.chad.yaml)")

	// Bind all flags to Viper so precedence is flags > env > file > defaults.
	_ = viper.BindPFlags(pf)

	// Migrate is the only command with its own flag.
	historyMigrateCmd.Flags().Int("target-version", -1, "Target schema version (-1 latest, 0 rollback all)")
	_ = viper.BindPFlag("target-version", historyMigrateCmd.Flags().Lookup("target-version"))

	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
