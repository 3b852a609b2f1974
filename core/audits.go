package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
)

// AuditBranding checks the fixed set of candidate files for legacy brand
// strings. A file that cannot be fetched is skipped; compliant is vacuously
// true when nothing was fetchable.
func AuditBranding(ctx context.Context, client contract.FleetClient, owner, repo, ref string) schema.BrandingResult {
	result := schema.BrandingResult{Issues: []schema.BrandingIssue{}}

	for _, fname := range schema.BrandingFiles {
		content, err := client.GetFileContent(ctx, owner, repo, fname, ref)
		if err != nil {
			continue
		}
		result.FilesChecked++

		contentLower := strings.ToLower(content)
		for _, bad := range schema.BrandIncorrect {
			if strings.Contains(contentLower, strings.ToLower(bad)) {
				result.Issues = append(result.Issues, schema.BrandingIssue{
					File:  fname,
					Found: bad,
					Fix:   fmt.Sprintf("Replace '%s' with '%s'", bad, schema.OrgName),
				})
			}
		}
		if !result.HasBranding {
			for _, good := range schema.BrandCorrect {
				if strings.Contains(contentLower, strings.ToLower(good)) {
					result.HasBranding = true
					break
				}
			}
		}
	}

	result.Compliant = len(result.Issues) == 0
	return result
}

// AuditArchitecture checks that the expected documentation files exist and
// that an architecture workflow is installed.
func AuditArchitecture(ctx context.Context, client contract.FleetClient, owner, repo, ref string) schema.ArchitectureResult {
	result := schema.ArchitectureResult{Files: make(map[string]bool, len(schema.ArchitectureFiles))}

	allPresent := true
	for _, fpath := range schema.ArchitectureFiles {
		_, err := client.GetFileContent(ctx, owner, repo, fpath, ref)
		exists := err == nil
		result.Files[fpath] = exists
		if !exists {
			allPresent = false
		}
	}

	if workflows, err := client.ListDirectory(ctx, owner, repo, ".github/workflows", ref); err == nil {
		for _, name := range workflows {
			if strings.Contains(strings.ToLower(name), schema.ArchitectureWorkflowKeyword) {
				result.HasWorkflow = true
				break
			}
		}
	}

	result.FullyConfigured = allPresent && result.HasWorkflow
	return result
}

// AuditSecrets checks which well-known secret names are configured. Only
// names are listed; the API never reveals values. Permission failures
// degrade to an empty result.
func AuditSecrets(ctx context.Context, client contract.FleetClient, owner, repo string) schema.SecretsResult {
	result := schema.SecretsResult{Secrets: []string{}}

	names, err := client.ListSecretNames(ctx, owner, repo)
	if err != nil {
		return result
	}
	result.Secrets = names

	for _, name := range names {
		if name == schema.AIProviderSecret {
			result.HasAIKey = true
		}
		for _, hint := range schema.CloudSecretHints {
			if strings.Contains(name, hint) {
				result.HasCloudCreds = true
				break
			}
		}
	}
	return result
}

// AuditWorkflows samples the most recent workflow runs and grades CI health:
// HEALTHY with zero failures, DEGRADED with one or two, FAILING with three
// or more. Fetch failure degrades to UNKNOWN.
func AuditWorkflows(ctx context.Context, client contract.FleetClient, owner, repo string) schema.WorkflowsResult {
	total, runs, err := client.ListWorkflowRuns(ctx, owner, repo, schema.WorkflowSampleSize)
	if err != nil {
		return schema.WorkflowsResult{
			RecentRuns: []schema.WorkflowRun{},
			Health:     schema.UnknownWorkflows,
		}
	}

	failing := 0
	for _, r := range runs {
		if r.Conclusion == "failure" {
			failing++
		}
	}

	health := schema.HealthyWorkflows
	switch {
	case failing >= 3:
		health = schema.FailingWorkflows
	case failing >= 1:
		health = schema.DegradedWorkflows
	}

	if runs == nil {
		runs = []schema.WorkflowRun{}
	}
	return schema.WorkflowsResult{
		TotalRuns:      total,
		RecentRuns:     runs,
		RecentFailures: failing,
		Health:         health,
	}
}
