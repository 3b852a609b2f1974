package schema

import "time"

// HistoryStatus represents the status of the audit history store.
type HistoryStatus struct {
	Backend           string           `json:"backend"`
	Connected         bool             `json:"connected"`
	TotalRuns         int              `json:"total_runs"`
	LastRunID         int64            `json:"last_run_id"`
	LastRunTime       time.Time        `json:"last_run_time"`
	OldestRunTime     time.Time        `json:"oldest_run_time"`
	TotalReposAudited int              `json:"total_repos_audited"`
	TableSizes        map[string]int64 `json:"table_sizes"`
}

// AuditRunRecord represents a row from the chad_audit_runs table.
type AuditRunRecord struct {
	AuditID      int64
	StartTime    time.Time
	EndTime      *time.Time
	DurationMs   *int32
	TotalRepos   int32
	APICallsUsed int32
	ConfigParams *string
}

// RepoClassificationRecord represents a row from the
// chad_repo_classifications table.
type RepoClassificationRecord struct {
	AuditID         int64
	FullName        string
	AuditTime       time.Time
	Tier            string
	Action          string
	MonthlyBurn     int32
	DiskMB          float64
	StalenessStatus string
	DaysSincePush   int32
	WorkflowHealth  string
	ServicesJSON    *string
}
