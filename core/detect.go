package core

import (
	"context"
	"sort"
	"strings"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
)

// EmptyServiceDetection returns the zero-cost result used when no corpus is
// available. Slices are non-nil so the report serializes them as [].
func EmptyServiceDetection() schema.ServiceDetection {
	return schema.ServiceDetection{
		Services:       []string{},
		ServiceDetails: []schema.ServiceDetail{},
		ThirdPartyCost: 0,
	}
}

// DetectServices scans a content corpus for third-party service fingerprints
// and maps matches through the static cost table. Detection is presence-only:
// the first matching pattern wins and re-runs over the same corpus are
// idempotent. Pure function; no I/O.
func DetectServices(corpus string) schema.ServiceDetection {
	if corpus == "" {
		return EmptyServiceDetection()
	}

	corpusLower := strings.ToLower(corpus)
	detected := make([]string, 0, len(schema.ServicePatterns))

	for svcKey, patterns := range schema.ServicePatterns {
		for _, pat := range patterns {
			if strings.Contains(corpusLower, strings.ToLower(pat)) {
				detected = append(detected, svcKey)
				break
			}
		}
	}
	sort.Strings(detected)

	details := make([]schema.ServiceDetail, 0, len(detected))
	totalCost := 0
	for _, svcKey := range detected {
		info := schema.ServiceCosts[svcKey]
		label := info.Label
		if label == "" {
			label = svcKey
		}
		category := info.Category
		if category == "" {
			category = "Other"
		}
		details = append(details, schema.ServiceDetail{
			Service:  svcKey,
			Label:    label,
			Cost:     info.Cost,
			Category: category,
		})
		totalCost += info.Cost
	}

	return schema.ServiceDetection{
		Services:       detected,
		ServiceDetails: details,
		ThirdPartyCost: totalCost,
	}
}

// BuildServiceCorpus concatenates the bodies of the candidate dependency and
// config files at the repo's default branch, plus any terraform manifests.
// A file that cannot be fetched is treated as absent, never as a failure;
// budget exhaustion simply shortens the corpus.
func BuildServiceCorpus(ctx context.Context, client contract.FleetClient, owner, repo, ref string) string {
	paths := make([]string, 0, len(schema.ServiceScanFiles)+4)
	paths = append(paths, schema.ServiceScanFiles...)

	if entries, err := client.ListDirectory(ctx, owner, repo, schema.TerraformDir, ref); err == nil {
		for _, name := range entries {
			if strings.HasSuffix(name, ".tf") {
				paths = append(paths, schema.TerraformDir+"/"+name)
			}
		}
	}

	var sb strings.Builder
	for _, path := range paths {
		content, err := client.GetFileContent(ctx, owner, repo, path, ref)
		if err != nil || content == "" {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(content)
	}
	return sb.String()
}
