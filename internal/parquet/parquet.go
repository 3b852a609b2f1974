// Package parquet provides data structures and functions for exporting chad
// audit history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/bluefalconink/chad/schema"
	"github.com/parquet-go/parquet-go"
)

// AuditRun represents a single fleet audit run with metadata.
// This struct maps to the chad_audit_runs database table.
type AuditRun struct {
	// AuditID is the unique identifier for this audit run
	AuditID int64 `parquet:"audit_id,snappy"`

	// StartTime is when the audit began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the audit completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the duration of the audit run in milliseconds (nullable)
	DurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRepos is the number of repos audited in this run
	TotalRepos int32 `parquet:"total_repos,snappy"`

	// APICallsUsed is how many remote calls the run consumed
	APICallsUsed int32 `parquet:"api_calls_used,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RepoClassificationRow represents the classification outcome for a single
// repo in an audit run. This struct maps to the chad_repo_classifications
// database table.
type RepoClassificationRow struct {
	// AuditID references the parent audit run
	AuditID int64 `parquet:"audit_id,snappy"`

	// FullName is the "owner/name" key of the repo
	FullName string `parquet:"full_name,snappy"`

	// AuditTime is when this repo was classified (stored as TIMESTAMP with nanosecond precision)
	AuditTime time.Time `parquet:"audit_time,snappy"`

	// Tier is the assigned classification tier
	Tier string `parquet:"tier,snappy"`

	// Action is the recommended action for the repo
	Action string `parquet:"action,snappy"`

	// MonthlyBurn is the estimated monthly cost in dollars
	MonthlyBurn int32 `parquet:"monthly_burn,snappy"`

	// DiskMB is the repo's disk usage in MB
	DiskMB float64 `parquet:"disk_mb,snappy"`

	// StalenessStatus is the repo's age bucket
	StalenessStatus string `parquet:"staleness_status,snappy"`

	// DaysSincePush is the age of the last push in days
	DaysSincePush int32 `parquet:"days_since_push,snappy"`

	// WorkflowHealth grades recent CI runs
	WorkflowHealth string `parquet:"workflow_health,snappy"`

	// ServicesJSON contains the JSON-encoded service detection result (nullable)
	ServicesJSON *string `parquet:"services_json,optional,snappy"`
}

// WriteAuditRunsParquet writes a slice of AuditRun structs to a Parquet file.
func WriteAuditRunsParquet(data []AuditRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AuditRun struct tags
	writer := parquet.NewGenericWriter[AuditRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRepoClassificationsParquet writes a slice of RepoClassificationRow structs to a Parquet file.
func WriteRepoClassificationsParquet(data []RepoClassificationRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RepoClassificationRow struct tags
	writer := parquet.NewGenericWriter[RepoClassificationRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAuditRunRecords converts schema.AuditRunRecord to AuditRun for Parquet export.
func ConvertAuditRunRecords(records []schema.AuditRunRecord) []AuditRun {
	result := make([]AuditRun, len(records))
	for i, record := range records {
		result[i] = AuditRun{
			AuditID:      record.AuditID,
			StartTime:    record.StartTime,
			EndTime:      record.EndTime,
			DurationMs:   record.DurationMs,
			TotalRepos:   record.TotalRepos,
			APICallsUsed: record.APICallsUsed,
			ConfigParams: record.ConfigParams,
		}
	}
	return result
}

// ConvertRepoClassificationRecords converts schema.RepoClassificationRecord to
// RepoClassificationRow for Parquet export.
func ConvertRepoClassificationRecords(records []schema.RepoClassificationRecord) []RepoClassificationRow {
	result := make([]RepoClassificationRow, len(records))
	for i, record := range records {
		result[i] = RepoClassificationRow{
			AuditID:         record.AuditID,
			FullName:        record.FullName,
			AuditTime:       record.AuditTime,
			Tier:            record.Tier,
			Action:          record.Action,
			MonthlyBurn:     record.MonthlyBurn,
			DiskMB:          record.DiskMB,
			StalenessStatus: record.StalenessStatus,
			DaysSincePush:   record.DaysSincePush,
			WorkflowHealth:  record.WorkflowHealth,
			ServicesJSON:    record.ServicesJSON,
		}
	}
	return result
}
