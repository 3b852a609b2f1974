package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuditBranding checks legacy brand detection across candidate files.
func TestAuditBranding(t *testing.T) {
	ctx := context.Background()

	t.Run("legacy brand produces issue with fix", func(t *testing.T) {
		client := &stubClient{
			getFileContent: func(_, _, path, _ string) (string, error) {
				if path == "README.md" {
					return "Welcome to Blue Falcon RC & Media!", nil
				}
				return "", contract.ErrNotFound
			},
		}

		result := AuditBranding(ctx, client, "owner", "repo", "main")
		assert.False(t, result.Compliant)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, "README.md", result.Issues[0].File)
		assert.Equal(t, "Blue Falcon RC & Media", result.Issues[0].Found)
		assert.Contains(t, result.Issues[0].Fix, schema.OrgName)
		assert.Equal(t, 1, result.FilesChecked)
	})

	t.Run("correct brand sets HasBranding", func(t *testing.T) {
		client := &stubClient{
			getFileContent: func(_, _, path, _ string) (string, error) {
				if path == "README.md" {
					return "A BlueFalconInk LLC product.", nil
				}
				return "", contract.ErrNotFound
			},
		}

		result := AuditBranding(ctx, client, "owner", "repo", "main")
		assert.True(t, result.Compliant)
		assert.True(t, result.HasBranding)
		assert.Empty(t, result.Issues)
	})

	t.Run("branding found in later file still counts", func(t *testing.T) {
		client := &stubClient{
			getFileContent: func(_, _, path, _ string) (string, error) {
				switch path {
				case "README.md":
					return "No brand mentioned here.", nil
				case "package.json":
					return `{"author": "bluefalconink"}`, nil
				}
				return "", contract.ErrNotFound
			},
		}

		result := AuditBranding(ctx, client, "owner", "repo", "main")
		assert.True(t, result.HasBranding)
		assert.Equal(t, 2, result.FilesChecked)
	})

	t.Run("nothing fetchable is vacuously compliant", func(t *testing.T) {
		result := AuditBranding(ctx, &stubClient{}, "owner", "repo", "main")
		assert.True(t, result.Compliant)
		assert.False(t, result.HasBranding)
		assert.Equal(t, 0, result.FilesChecked)
	})
}

// TestAuditArchitecture checks documentation and workflow detection.
func TestAuditArchitecture(t *testing.T) {
	ctx := context.Background()

	t.Run("fully configured", func(t *testing.T) {
		client := &stubClient{
			getFileContent: func(_, _, _, _ string) (string, error) {
				return "present", nil
			},
			listDirectory: func(_, _, dir, _ string) ([]string, error) {
				require.Equal(t, ".github/workflows", dir)
				return []string{"ci.yml", "update-architecture.yml"}, nil
			},
		}

		result := AuditArchitecture(ctx, client, "owner", "repo", "main")
		assert.True(t, result.FullyConfigured)
		assert.True(t, result.HasWorkflow)
		for _, fpath := range schema.ArchitectureFiles {
			assert.True(t, result.Files[fpath], "file %s should be present", fpath)
		}
	})

	t.Run("missing docs file", func(t *testing.T) {
		client := &stubClient{
			getFileContent: func(_, _, path, _ string) (string, error) {
				if path == "docs/architecture.md" {
					return "", contract.ErrNotFound
				}
				return "present", nil
			},
			listDirectory: func(_, _, _, _ string) ([]string, error) {
				return []string{"architecture.yml"}, nil
			},
		}

		result := AuditArchitecture(ctx, client, "owner", "repo", "main")
		assert.False(t, result.FullyConfigured)
		assert.True(t, result.HasWorkflow)
		assert.False(t, result.Files["docs/architecture.md"])
	})

	t.Run("no workflow", func(t *testing.T) {
		client := &stubClient{
			getFileContent: func(_, _, _, _ string) (string, error) {
				return "present", nil
			},
			listDirectory: func(_, _, _, _ string) ([]string, error) {
				return []string{"ci.yml", "deploy.yml"}, nil
			},
		}

		result := AuditArchitecture(ctx, client, "owner", "repo", "main")
		assert.False(t, result.FullyConfigured)
		assert.False(t, result.HasWorkflow)
	})
}

// TestAuditSecrets checks secret-name fingerprinting.
func TestAuditSecrets(t *testing.T) {
	ctx := context.Background()

	t.Run("AI key and cloud creds detected", func(t *testing.T) {
		client := &stubClient{
			listSecretNames: func(_, _ string) ([]string, error) {
				return []string{"GEMINI_API_KEY", "GCP_SA_KEY", "NPM_TOKEN"}, nil
			},
		}

		result := AuditSecrets(ctx, client, "owner", "repo")
		assert.True(t, result.HasAIKey)
		assert.True(t, result.HasCloudCreds)
		assert.Len(t, result.Secrets, 3)
	})

	t.Run("google hint counts as cloud creds", func(t *testing.T) {
		client := &stubClient{
			listSecretNames: func(_, _ string) ([]string, error) {
				return []string{"GOOGLE_CREDENTIALS"}, nil
			},
		}

		result := AuditSecrets(ctx, client, "owner", "repo")
		assert.False(t, result.HasAIKey)
		assert.True(t, result.HasCloudCreds)
	})

	t.Run("permission failure degrades to empty", func(t *testing.T) {
		client := &stubClient{
			listSecretNames: func(_, _ string) ([]string, error) {
				return nil, fmt.Errorf("api returned 403 for /repos/owner/repo/actions/secrets")
			},
		}

		result := AuditSecrets(ctx, client, "owner", "repo")
		assert.False(t, result.HasAIKey)
		assert.False(t, result.HasCloudCreds)
		assert.Empty(t, result.Secrets)
		assert.NotNil(t, result.Secrets)
	})
}

// TestAuditWorkflows checks CI health grading from sampled runs.
func TestAuditWorkflows(t *testing.T) {
	ctx := context.Background()

	makeRuns := func(failures, total int) []schema.WorkflowRun {
		runs := make([]schema.WorkflowRun, 0, total)
		for i := range total {
			conclusion := "success"
			if i < failures {
				conclusion = "failure"
			}
			runs = append(runs, schema.WorkflowRun{
				Name:       "ci",
				Status:     "completed",
				Conclusion: conclusion,
			})
		}
		return runs
	}

	tests := []struct {
		name     string
		failures int
		expected schema.WorkflowHealth
	}{
		{name: "no failures is healthy", failures: 0, expected: schema.HealthyWorkflows},
		{name: "one failure is degraded", failures: 1, expected: schema.DegradedWorkflows},
		{name: "two failures is degraded", failures: 2, expected: schema.DegradedWorkflows},
		{name: "three failures is failing", failures: 3, expected: schema.FailingWorkflows},
		{name: "all failing", failures: 5, expected: schema.FailingWorkflows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{
				listWorkflowRuns: func(_, _ string, limit int) (int, []schema.WorkflowRun, error) {
					assert.Equal(t, schema.WorkflowSampleSize, limit)
					return 42, makeRuns(tt.failures, 5), nil
				},
			}

			result := AuditWorkflows(ctx, client, "owner", "repo")
			assert.Equal(t, tt.expected, result.Health)
			assert.Equal(t, tt.failures, result.RecentFailures)
			assert.Equal(t, 42, result.TotalRuns)
			assert.Len(t, result.RecentRuns, 5)
		})
	}

	t.Run("fetch failure degrades to unknown", func(t *testing.T) {
		result := AuditWorkflows(ctx, &stubClient{}, "owner", "repo")
		assert.Equal(t, schema.UnknownWorkflows, result.Health)
		assert.NotNil(t, result.RecentRuns)
		assert.Empty(t, result.RecentRuns)
	})

	t.Run("repo with no runs is healthy", func(t *testing.T) {
		client := &stubClient{
			listWorkflowRuns: func(_, _ string, _ int) (int, []schema.WorkflowRun, error) {
				return 0, nil, nil
			},
		}
		result := AuditWorkflows(ctx, client, "owner", "repo")
		assert.Equal(t, schema.HealthyWorkflows, result.Health)
		assert.NotNil(t, result.RecentRuns)
	})
}
