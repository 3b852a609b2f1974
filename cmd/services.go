package cmd

import (
	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/internal/outwriter"
	"github.com/spf13/cobra"
)

// servicesCmd prints the static service cost table.
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Show the third-party service cost table",
	Long: `Show the static cost table used for monthly burn estimates.

Each known third-party service is listed with its category and the worst-case
monthly cost attributed to a repo that uses it. No API calls are made.

Examples:
  # Human-readable table
  chad services

  # Feed the table into another tool
  chad services --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		writer := outwriter.NewOutWriter()
		if err := writer.WriteServices(cfg); err != nil {
			contract.LogFatal("Failed to write service costs", err)
		}
	},
}
