package core

import (
	"math"

	"github.com/bluefalconink/chad/schema"
)

// tierAndAction applies the priority-ordered tier rules. First match wins:
// archived > core allowlist > legacy fork > fork > dead > stale > dormant.
// Everything else, including UNKNOWN staleness, lands in the fallthrough.
func tierAndAction(rec schema.RepoRecord, st schema.StalenessResult, coreRepos map[string]struct{}) (schema.Tier, schema.Action) {
	_, isCore := coreRepos[rec.Name]

	switch {
	case rec.Archived:
		return schema.ArchivedTier, schema.NoneAction
	case isCore:
		return schema.CoreTier, schema.MaintainAction
	case rec.Fork && (st.Status == schema.DeadStaleness || st.Status == schema.StaleStaleness):
		return schema.LegacyForkTier, schema.DeleteAction
	case rec.Fork:
		return schema.ForkTier, schema.ReviewAction
	case st.Status == schema.DeadStaleness:
		return schema.DeadTier, schema.ArchiveOrDeleteAction
	case st.Status == schema.StaleStaleness:
		return schema.StaleTier, schema.ArchiveAction
	case st.Status == schema.DormantStaleness, st.Status == schema.UnknownStaleness:
		// An unusable timestamp parks the repo in DORMANT/REVIEW rather
		// than letting it masquerade as ACTIVE.
		return schema.DormantTier, schema.ReviewAction
	default:
		return schema.ActiveTier, schema.MaintainAction
	}
}

// PreliminaryTier computes the tier from staleness and flags alone, before
// any deep audits run. The orchestrator uses it to decide scan depth.
func PreliminaryTier(rec schema.RepoRecord, st schema.StalenessResult, coreRepos map[string]struct{}) schema.Tier {
	tier, _ := tierAndAction(rec, st, coreRepos)
	return tier
}

// TierNeedsDeepScan reports whether a tier warrants the expensive content
// and metadata audits. Stale, dead, fork and archived repos are skipped to
// conserve the API budget.
func TierNeedsDeepScan(tier schema.Tier) bool {
	switch tier {
	case schema.CoreTier, schema.ActiveTier, schema.DormantTier:
		return true
	default:
		return false
	}
}

// Classify derives the final classification from a repo record, its
// staleness and its detected services. Pure function; it cannot fail, and
// absent service data defaults to zero cost.
func Classify(rec schema.RepoRecord, st schema.StalenessResult, services schema.ServiceDetection, coreRepos map[string]struct{}) schema.RepoClassification {
	tier, action := tierAndAction(rec, st, coreRepos)

	burnBreakdown := make(map[string]int)
	if TierNeedsDeepScan(tier) {
		// Compute platform scales to zero when idle; recently pushed
		// repos get a small baseline for cold starts and registry
		// storage. days < 30 implies ACTIVE status, so repos with
		// UNKNOWN staleness never earn the active baseline.
		if st.Status == schema.ActiveStaleness && st.DaysSincePush < schema.ActivePushDays {
			burnBreakdown[schema.ComputeBurnKey] = schema.CloudRunActiveBase
		} else {
			burnBreakdown[schema.ComputeBurnKey] = schema.CloudRunIdleBase
		}

		burnBreakdown[schema.CIBurnKey] = schema.CIBase

		// Zero-cost services are tracked but never added to burn.
		for _, svc := range services.ServiceDetails {
			if svc.Cost > 0 {
				burnBreakdown[svc.Label] = svc.Cost
			}
		}
	}

	monthlyBurn := 0
	for _, amount := range burnBreakdown {
		monthlyBurn += amount
	}

	return schema.RepoClassification{
		Tier:                tier,
		Action:              action,
		MonthlyBurnEstimate: monthlyBurn,
		BurnBreakdown:       burnBreakdown,
		DiskMB:              DiskMB(rec.SizeKB),
	}
}

// DiskMB converts a KB disk size to MB with one decimal place.
func DiskMB(sizeKB int64) float64 {
	return math.Round(float64(sizeKB)/1024*10) / 10
}
