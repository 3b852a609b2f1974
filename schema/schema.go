// Package schema has configs, models and static tables for all parts of chad.
package schema

// RepoRecord is an immutable snapshot of repository metadata as returned by
// the repo-listing source. Nothing in the audit pipeline mutates it.
type RepoRecord struct {
	Name          string // Repository name without owner
	Owner         string // Login of the owning user or org
	FullName      string // "owner/name" key used for dedup
	Description   string // Free-text description, may be empty
	HTMLURL       string // Web URL of the repository
	Private       bool   // Visibility flag
	Fork          bool   // True when the repo is a fork
	Archived      bool   // True when the repo is archived
	SizeKB        int64  // Disk usage reported in KB
	PushedAt      string // ISO-8601 timestamp of the last push
	DefaultBranch string // Default branch name, e.g. "main"
	Language      string // Primary language, may be empty
}

// StalenessResult is the age-bucket evaluation of a repo's last push.
type StalenessResult struct {
	LastPush       string          `json:"last_push"`
	DaysSincePush  int             `json:"days_since_push"`
	Status         StalenessStatus `json:"status"`
	Recommendation string          `json:"recommendation"`
}

// ServiceDetail describes one detected third-party service with its cost data.
type ServiceDetail struct {
	Service  string `json:"service"`
	Label    string `json:"label"`
	Cost     int    `json:"cost"`
	Category string `json:"category"`
}

// ServiceDetection holds the detected services for one repo. Services with a
// zero cost are listed but excluded from ThirdPartyCost.
type ServiceDetection struct {
	Services       []string        `json:"services"`
	ServiceDetails []ServiceDetail `json:"service_details"`
	ThirdPartyCost int             `json:"third_party_cost"`
}

// RepoClassification is the derived decision record for one repo. It is a
// pure function of RepoRecord + StalenessResult + ServiceDetection and is
// recomputed on every audit run.
type RepoClassification struct {
	Tier                Tier           `json:"tier"`
	Action              Action         `json:"action"`
	MonthlyBurnEstimate int            `json:"monthly_burn_estimate"`
	BurnBreakdown       map[string]int `json:"burn_breakdown"`
	DiskMB              float64        `json:"disk_mb"`
}

// BrandingIssue is a single incorrect-brand match in a checked file.
type BrandingIssue struct {
	File  string `json:"file"`
	Found string `json:"found"`
	Fix   string `json:"fix"`
}

// BrandingResult holds the branding compliance check for one repo.
type BrandingResult struct {
	FilesChecked int             `json:"files_checked"`
	Issues       []BrandingIssue `json:"issues"`
	Compliant    bool            `json:"compliant"`
	HasBranding  bool            `json:"has_branding"`
}

// ArchitectureResult reports which expected documentation files exist and
// whether an architecture workflow is installed.
type ArchitectureResult struct {
	Files           map[string]bool `json:"files"`
	HasWorkflow     bool            `json:"has_workflow"`
	FullyConfigured bool            `json:"fully_configured"`
}

// SecretsResult reports which well-known secret names are configured.
// Only secret names are ever inspected, never values.
type SecretsResult struct {
	Secrets       []string `json:"secrets"`
	HasAIKey      bool     `json:"has_gemini_key"`
	HasCloudCreds bool     `json:"has_gcp_creds"`
}

// WorkflowRun is a summary of one recent workflow run.
type WorkflowRun struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
	CreatedAt  string `json:"created_at"`
}

// WorkflowsResult reports CI health over the most recent runs.
type WorkflowsResult struct {
	TotalRuns      int            `json:"total_runs"`
	RecentRuns     []WorkflowRun  `json:"recent_runs"`
	RecentFailures int            `json:"recent_failures"`
	Health         WorkflowHealth `json:"health"`
}

// RepoAudit is the full per-repo detail object in the audit report. The field
// names and nesting form the stable contract with downstream consumers.
type RepoAudit struct {
	Name           string             `json:"name"`
	Owner          string             `json:"owner"`
	FullName       string             `json:"full_name"`
	Description    string             `json:"description"`
	URL            string             `json:"url"`
	IsPrivate      bool               `json:"is_private"`
	IsFork         bool               `json:"is_fork"`
	IsArchived     bool               `json:"is_archived"`
	Language       string             `json:"language"`
	DefaultBranch  string             `json:"default_branch"`
	DiskUsageKB    int64              `json:"disk_usage_kb"`
	Staleness      StalenessResult    `json:"staleness"`
	Classification RepoClassification `json:"classification"`
	Branding       BrandingResult     `json:"branding"`
	Architecture   ArchitectureResult `json:"architecture"`
	Secrets        SecretsResult      `json:"secrets"`
	Workflows      WorkflowsResult    `json:"workflows"`
	Services       ServiceDetection   `json:"services"`
}

// RepoBrandingIssues aggregates branding findings for one repo in the summary.
type RepoBrandingIssues struct {
	Repo    string          `json:"repo"`
	Count   int             `json:"count"`
	Details []BrandingIssue `json:"details"`
}

// AuditSummary is the fleet-wide aggregate built by folding every RepoAudit.
type AuditSummary struct {
	TotalRepos        int                  `json:"total_repos"`
	OwnersScanned     []string             `json:"owners_scanned"`
	Core              int                  `json:"core"`
	Active            int                  `json:"active"`
	Stale             int                  `json:"stale"`
	Dead              int                  `json:"dead"`
	Forks             int                  `json:"forks"`
	Archived          int                  `json:"archived"`
	DeleteCandidates  []string             `json:"delete_candidates"`
	ArchiveCandidates []string             `json:"archive_candidates"`
	BrandingIssues    []RepoBrandingIssues `json:"branding_issues"`
	TotalDiskMB       float64              `json:"total_disk_mb"`
	TotalMonthlyBurn  int                  `json:"total_monthly_burn"`
	TimestampErrors   []string             `json:"timestamp_errors"`
}

// AuditReport is the single JSON document persisted after a run. Top-level
// keys must be preserved exactly for dashboard and cleanup consumers.
type AuditReport struct {
	AuditTimestamp string        `json:"audit_timestamp"`
	Owner          string        `json:"owner"`
	Owners         []string      `json:"owners"`
	OrgName        string        `json:"org_name"`
	APICallsUsed   int           `json:"api_calls_used"`
	Summary        *AuditSummary `json:"summary"`
	Repos          []RepoAudit   `json:"repos"`
}
