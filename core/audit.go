package core

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
)

// RunAudit scans the configured owner (plus any extra orgs), classifies every
// repo and folds the results into a fleet-wide report. The budget bounds the
// total number of remote calls; once exhausted the remaining checks degrade
// to their defaults and the report is finalized as partial, with
// api_calls_used exposing how much of the ceiling was spent.
func RunAudit(ctx context.Context, cfg *contract.Config, client contract.FleetClient, budget *contract.Budget, mgr contract.StoreManager) (*schema.AuditReport, error) {
	owners := append([]string{cfg.Owner}, cfg.ExtraOrgs...)
	logAuditHeader(ctx, cfg, owners)

	// --- 0. Begin history tracking (if configured) ---
	var auditID int64
	var store contract.HistoryStore
	if mgr != nil {
		store = mgr.GetHistoryStore()
	}
	startTime := time.Now()
	if store != nil {
		configParams := map[string]any{
			"owner":         cfg.Owner,
			"extra_orgs":    cfg.ExtraOrgs,
			"max_api_calls": cfg.MaxAPICalls,
			"workers":       cfg.Workers,
		}
		var err error
		auditID, err = store.BeginAudit(startTime, configParams)
		if err != nil {
			contract.LogWarn("History tracking initialization failed", err)
			auditID = 0
		}
	}

	// --- 1. Enumeration phase ---
	repos := enumerateRepos(ctx, cfg, client)
	logProgress(ctx, "   Found %d repos across %s", len(repos), strings.Join(owners, ", "))

	// --- 2. Per-repo audits in a bounded worker pool ---
	audits := auditFleet(ctx, cfg, client, repos)

	// --- 3. Fold into the summary, sequentially ---
	summary := newSummary(owners)
	for i := range audits {
		foldSummary(summary, &audits[i])
	}
	summary.TotalRepos = len(audits)

	// --- 4. Deterministic output ordering ---
	sortAudits(audits)

	report := &schema.AuditReport{
		AuditTimestamp: time.Now().UTC().Format(time.RFC3339),
		Owner:          cfg.Owner,
		Owners:         owners,
		OrgName:        schema.OrgName,
		APICallsUsed:   budget.Used(),
		Summary:        summary,
		Repos:          audits,
	}

	// --- 5. End history tracking ---
	if store != nil && auditID > 0 {
		for i := range audits {
			if err := store.RecordRepo(auditID, audits[i]); err != nil {
				contract.LogWarn("Failed to record repo classification", err)
				break
			}
		}
		if err := store.EndAudit(auditID, time.Now(), len(audits), budget.Used()); err != nil {
			contract.LogWarn("Failed to finalize history tracking", err)
		}
	}

	return report, nil
}

// enumerateRepos merges the listing endpoints into one candidate set,
// deduplicated by owner/name. First-seen wins: the authenticated endpoint
// takes precedence over the public one, which takes precedence over extra
// orgs. Listing failures (including budget exhaustion) end that source early
// and never abort the audit.
func enumerateRepos(ctx context.Context, cfg *contract.Config, client contract.FleetClient) []schema.RepoRecord {
	seen := make(map[string]struct{})
	var repos []schema.RepoRecord

	add := func(batch []schema.RepoRecord, restrictOwner string) {
		for _, rec := range batch {
			if restrictOwner != "" && !strings.EqualFold(rec.Owner, restrictOwner) {
				continue
			}
			if _, ok := seen[rec.FullName]; ok {
				continue
			}
			seen[rec.FullName] = struct{}{}
			repos = append(repos, rec)
		}
	}

	// 1) Authenticated endpoint -- private + owned repos for primary owner
	forEachPage(ctx, func(ctx context.Context, page int) ([]schema.RepoRecord, error) {
		return client.ListOwnRepos(ctx, page)
	}, func(batch []schema.RepoRecord) {
		add(batch, cfg.Owner)
	})

	// 2) Public endpoint for primary owner -- catches forks
	forEachPage(ctx, func(ctx context.Context, page int) ([]schema.RepoRecord, error) {
		return client.ListUserRepos(ctx, cfg.Owner, page)
	}, func(batch []schema.RepoRecord) {
		add(batch, "")
	})

	// 3) Extra orgs
	for _, org := range cfg.ExtraOrgs {
		logProgress(ctx, "[ORG] Scanning org: %s", org)
		forEachPage(ctx, func(ctx context.Context, page int) ([]schema.RepoRecord, error) {
			return client.ListOrgRepos(ctx, org, page)
		}, func(batch []schema.RepoRecord) {
			add(batch, "")
		})
	}

	return repos
}

// forEachPage drives a page-based listing source until it is drained or
// fails. A short page ends the source.
func forEachPage(ctx context.Context, list func(context.Context, int) ([]schema.RepoRecord, error), consume func([]schema.RepoRecord)) {
	for page := 1; ; page++ {
		batch, err := list(ctx, page)
		if err != nil {
			if !errors.Is(err, contract.ErrBudgetExhausted) && !errors.Is(err, contract.ErrNotFound) {
				contract.LogWarn("Repo listing failed", err)
			}
			return
		}
		if len(batch) == 0 {
			return
		}
		consume(batch)
		if len(batch) < contract.ListPageSize {
			return
		}
	}
}

// auditFleet processes all repos in parallel using a worker pool. Each
// worker produces an immutable RepoAudit; nothing is shared between repos
// except the atomic call budget inside the client.
func auditFleet(ctx context.Context, cfg *contract.Config, client contract.FleetClient, repos []schema.RepoRecord) []schema.RepoAudit {
	repoCh := make(chan schema.RepoRecord, len(repos))
	resultCh := make(chan schema.RepoAudit, len(repos))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range repoCh {
				resultCh <- AuditRepo(ctx, cfg, client, rec)
			}
		}()
	}

	for _, rec := range repos {
		repoCh <- rec
	}
	close(repoCh)
	wg.Wait()
	close(resultCh)

	audits := make([]schema.RepoAudit, 0, len(repos))
	for audit := range resultCh {
		audits = append(audits, audit)
	}
	return audits
}

// AuditRepo runs the full pipeline for one repo: staleness, the preliminary
// tier gate, the conditional deep audits, then final classification.
func AuditRepo(ctx context.Context, cfg *contract.Config, client contract.FleetClient, rec schema.RepoRecord) schema.RepoAudit {
	logProgress(ctx, "[REPO] Auditing: %s", rec.FullName)

	staleness, err := EvaluateStaleness(rec.PushedAt, time.Now().UTC())
	if err != nil {
		contract.LogWarn("Unusable pushed_at for "+rec.FullName, err)
		staleness = UnknownStaleness(rec.PushedAt)
	} else {
		logProgress(ctx, "   [DATE] %s (%dd)", staleness.Status, staleness.DaysSincePush)
	}

	// Defaults reported when the deep audits are skipped or degraded.
	branding := schema.BrandingResult{Compliant: true, Issues: []schema.BrandingIssue{}}
	architecture := schema.ArchitectureResult{Files: map[string]bool{}}
	secrets := schema.SecretsResult{Secrets: []string{}}
	workflows := schema.WorkflowsResult{Health: schema.UnknownWorkflows, RecentRuns: []schema.WorkflowRun{}}
	services := EmptyServiceDetection()

	// Deep audits only for tiers that matter, to conserve the API budget.
	if TierNeedsDeepScan(PreliminaryTier(rec, staleness, cfg.CoreRepos)) {
		branding = AuditBranding(ctx, client, rec.Owner, rec.Name, rec.DefaultBranch)
		if len(branding.Issues) > 0 {
			logProgress(ctx, "   [WARN] Branding issues: %d", len(branding.Issues))
		}

		architecture = AuditArchitecture(ctx, client, rec.Owner, rec.Name, rec.DefaultBranch)
		secrets = AuditSecrets(ctx, client, rec.Owner, rec.Name)
		workflows = AuditWorkflows(ctx, client, rec.Owner, rec.Name)

		corpus := BuildServiceCorpus(ctx, client, rec.Owner, rec.Name, rec.DefaultBranch)
		services = DetectServices(corpus)
		if len(services.Services) > 0 {
			logProgress(ctx, "   [SVC] 3rd-party: %s ($%d/mo)", strings.Join(services.Services, ", "), services.ThirdPartyCost)
		}
	}

	classification := Classify(rec, staleness, services, cfg.CoreRepos)
	logProgress(ctx, "   [TAG] %s -> %s ($%d/mo)", classification.Tier, classification.Action, classification.MonthlyBurnEstimate)

	language := rec.Language
	if language == "" {
		language = "None"
	}

	return schema.RepoAudit{
		Name:           rec.Name,
		Owner:          rec.Owner,
		FullName:       rec.FullName,
		Description:    rec.Description,
		URL:            rec.HTMLURL,
		IsPrivate:      rec.Private,
		IsFork:         rec.Fork,
		IsArchived:     rec.Archived,
		Language:       language,
		DefaultBranch:  rec.DefaultBranch,
		DiskUsageKB:    rec.SizeKB,
		Staleness:      staleness,
		Classification: classification,
		Branding:       branding,
		Architecture:   architecture,
		Secrets:        secrets,
		Workflows:      workflows,
		Services:       services,
	}
}

// newSummary returns an empty summary with non-nil slices so the report
// serializes them as [] rather than null.
func newSummary(owners []string) *schema.AuditSummary {
	return &schema.AuditSummary{
		OwnersScanned:     owners,
		DeleteCandidates:  []string{},
		ArchiveCandidates: []string{},
		BrandingIssues:    []schema.RepoBrandingIssues{},
		TimestampErrors:   []string{},
	}
}

// foldSummary accumulates one repo's results into the running tallies.
func foldSummary(summary *schema.AuditSummary, audit *schema.RepoAudit) {
	switch audit.Classification.Tier {
	case schema.CoreTier:
		summary.Core++
	case schema.ActiveTier:
		summary.Active++
	case schema.StaleTier, schema.DormantTier:
		summary.Stale++
	case schema.DeadTier, schema.LegacyForkTier:
		summary.Dead++
	}

	if audit.IsFork {
		summary.Forks++
	}
	if audit.IsArchived {
		summary.Archived++
	}

	switch audit.Classification.Action {
	case schema.DeleteAction:
		summary.DeleteCandidates = append(summary.DeleteCandidates, audit.FullName)
	case schema.ArchiveAction, schema.ArchiveOrDeleteAction:
		summary.ArchiveCandidates = append(summary.ArchiveCandidates, audit.FullName)
	}

	if len(audit.Branding.Issues) > 0 {
		summary.BrandingIssues = append(summary.BrandingIssues, schema.RepoBrandingIssues{
			Repo:    audit.FullName,
			Count:   len(audit.Branding.Issues),
			Details: audit.Branding.Issues,
		})
	}

	if audit.Staleness.Status == schema.UnknownStaleness {
		summary.TimestampErrors = append(summary.TimestampErrors, audit.FullName)
	}

	summary.TotalDiskMB += audit.Classification.DiskMB
	summary.TotalMonthlyBurn += audit.Classification.MonthlyBurnEstimate
}

// sortAudits orders the report by tier priority, CORE first and ARCHIVED
// last, then alphabetically for diffable output. FullName breaks name ties
// so repos sharing a name across owners keep a stable order regardless of
// worker completion order.
func sortAudits(audits []schema.RepoAudit) {
	sort.Slice(audits, func(i, j int) bool {
		pi := tierRank(audits[i].Classification.Tier)
		pj := tierRank(audits[j].Classification.Tier)
		if pi != pj {
			return pi < pj
		}
		if audits[i].Name != audits[j].Name {
			return audits[i].Name < audits[j].Name
		}
		return audits[i].FullName < audits[j].FullName
	})
}

func tierRank(tier schema.Tier) int {
	if p, ok := schema.TierPriority[tier]; ok {
		return p
	}
	return len(schema.TierPriority) + 1
}
