// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/bluefalconink/chad/schema"
)

// Sentinel errors shared across the audit pipeline.
var (
	// ErrBudgetExhausted signals that the API-call ceiling was reached.
	// It is a control-flow signal: callers degrade to partial results.
	ErrBudgetExhausted = errors.New("api call budget exhausted")

	// ErrNotFound signals a 404 for a specific resource. Treated the same
	// as a permission failure: the check degrades to its empty default.
	ErrNotFound = errors.New("resource not found")
)

// FleetClient defines the remote operations the audit needs. This allows the
// orchestrator and auditors to be tested without a network.
type FleetClient interface {
	// --- Repo listing ---

	// ListOwnRepos returns one page of repos affiliated with the
	// authenticated user (includes private repos).
	ListOwnRepos(ctx context.Context, page int) ([]schema.RepoRecord, error)

	// ListUserRepos returns one page of a user's repos (public endpoint,
	// catches forks the affiliation endpoint misses).
	ListUserRepos(ctx context.Context, user string, page int) ([]schema.RepoRecord, error)

	// ListOrgRepos returns one page of an organization's repos.
	ListOrgRepos(ctx context.Context, org string, page int) ([]schema.RepoRecord, error)

	// GetRepo returns the metadata record for a single repo.
	// Returns ErrNotFound when the repo does not exist.
	GetRepo(ctx context.Context, owner, repo string) (schema.RepoRecord, error)

	// --- File state / content ---

	// GetFileContent returns the raw text of a file at a ref.
	// Returns ErrNotFound when the file does not exist.
	GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error)

	// ListDirectory returns the entry names of a directory at a ref.
	// Returns ErrNotFound when the directory does not exist.
	ListDirectory(ctx context.Context, owner, repo, dir, ref string) ([]string, error)

	// --- Actions metadata ---

	// ListWorkflowRuns returns the total run count and the most recent
	// run summaries, newest first, up to limit.
	ListWorkflowRuns(ctx context.Context, owner, repo string, limit int) (int, []schema.WorkflowRun, error)

	// ListSecretNames returns configured Actions secret names.
	// Secret values are never exposed by the underlying API.
	ListSecretNames(ctx context.Context, owner, repo string) ([]string, error)
}

// HistoryStore defines the interface for tracking audit runs and storing
// per-repo classification rows.
type HistoryStore interface {
	// BeginAudit creates a new audit run and returns its unique ID
	BeginAudit(startTime time.Time, configParams map[string]any) (int64, error)

	// EndAudit updates the audit run with completion data
	EndAudit(auditID int64, endTime time.Time, totalRepos, apiCallsUsed int) error

	// RecordRepo stores the classification row for one audited repo
	RecordRepo(auditID int64, audit schema.RepoAudit) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllAuditRuns retrieves all audit runs for export
	GetAllAuditRuns() ([]schema.AuditRunRecord, error)

	// GetAllRepoClassifications retrieves all classification rows for export
	GetAllRepoClassifications() ([]schema.RepoClassificationRecord, error)

	// Close closes the underlying connection
	Close() error
}

// StoreManager defines the interface for accessing persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetHistoryStore() HistoryStore
}
