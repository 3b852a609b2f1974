package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAuditReport outputs the audit report, dispatching based on the output format configured.
func WriteAuditReport(report *schema.AuditReport, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// SaveReportFile persists the full report JSON to the given path. This is the
// machine-readable artifact consumed by dashboards and cleanup tooling.
func SaveReportFile(report *schema.AuditReport, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := writeJSON(file, report); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Saved report to %s\n", path)
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(report *schema.AuditReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(report *schema.AuditReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"repo",
			"owner",
			"tier",
			"action",
			"staleness",
			"days_since_push",
			"monthly_burn",
			"disk_mb",
			"workflow_health",
			"services",
			"is_fork",
			"is_archived",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, repo := range report.Repos {
				rec := []string{
					repo.Name,
					repo.Owner,
					string(repo.Classification.Tier),
					string(repo.Classification.Action),
					string(repo.Staleness.Status),
					strconv.Itoa(repo.Staleness.DaysSincePush),
					strconv.Itoa(repo.Classification.MonthlyBurnEstimate),
					fmt.Sprintf("%.1f", repo.Classification.DiskMB),
					string(repo.Workflows.Health),
					strings.Join(repo.Services.Services, "|"),
					strconv.FormatBool(repo.IsFork),
					strconv.FormatBool(repo.IsArchived),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(report *schema.AuditReport, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Repo", "Tier", "Action", "Age", "Burn", "Disk", "CI"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, repo := range report.Repos {
		age := strconv.Itoa(repo.Staleness.DaysSincePush) + "d"
		if repo.Staleness.Status == schema.UnknownStaleness {
			age = "?"
		}
		row := []string{
			contract.TruncateName(repo.FullName, nameWidth),              // Repo
			contract.GetColorTier(repo.Classification.Tier),              // Tier
			contract.GetColorAction(repo.Classification.Action),          // Action
			age,                                                          // Age
			"$" + strconv.Itoa(repo.Classification.MonthlyBurnEstimate),  // Burn
			fmt.Sprintf("%.1fM", repo.Classification.DiskMB),             // Disk
			contract.GetColorHealth(repo.Workflows.Health),               // CI
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 5. Summary block
	if err := writeSummaryBlock(report, writer); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Audit completed in %v with %d workers. History backend: %s\n", duration, cfg.Workers, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeSummaryBlock prints the fleet-wide aggregates below the table.
func writeSummaryBlock(report *schema.AuditReport, writer io.Writer) error {
	s := report.Summary
	if s == nil {
		return nil
	}

	lines := []string{
		fmt.Sprintf("Repos: %d total (core: %d, active: %d, stale: %d, dead: %d, forks: %d, archived: %d)",
			s.TotalRepos, s.Core, s.Active, s.Stale, s.Dead, s.Forks, s.Archived),
		fmt.Sprintf("Disk: %.1f MB total, burn: $%d/mo, API calls used: %d",
			s.TotalDiskMB, s.TotalMonthlyBurn, report.APICallsUsed),
	}
	if len(s.DeleteCandidates) > 0 {
		lines = append(lines, fmt.Sprintf("Delete candidates: %s", strings.Join(s.DeleteCandidates, ", ")))
	}
	if len(s.ArchiveCandidates) > 0 {
		lines = append(lines, fmt.Sprintf("Archive candidates: %s", strings.Join(s.ArchiveCandidates, ", ")))
	}
	if len(s.BrandingIssues) > 0 {
		repos := make([]string, 0, len(s.BrandingIssues))
		for _, issue := range s.BrandingIssues {
			repos = append(repos, fmt.Sprintf("%s (%d)", issue.Repo, issue.Count))
		}
		lines = append(lines, fmt.Sprintf("Branding issues: %s", strings.Join(repos, ", ")))
	}
	if len(s.TimestampErrors) > 0 {
		lines = append(lines, fmt.Sprintf("Unusable push timestamps: %s", strings.Join(s.TimestampErrors, ", ")))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}
