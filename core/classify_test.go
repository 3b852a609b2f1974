package core

import (
	"testing"

	"github.com/bluefalconink/chad/schema"
	"github.com/stretchr/testify/assert"
)

// TestClassifyTierPriority checks the first-match-wins tier rules.
func TestClassifyTierPriority(t *testing.T) {
	coreRepos := map[string]struct{}{"flagship": {}}

	tests := []struct {
		name           string
		rec            schema.RepoRecord
		status         schema.StalenessStatus
		expectedTier   schema.Tier
		expectedAction schema.Action
	}{
		{
			name:           "archived wins over everything",
			rec:            schema.RepoRecord{Name: "flagship", Archived: true, Fork: true},
			status:         schema.DeadStaleness,
			expectedTier:   schema.ArchivedTier,
			expectedAction: schema.NoneAction,
		},
		{
			name:           "core allowlist wins over dead",
			rec:            schema.RepoRecord{Name: "flagship"},
			status:         schema.DeadStaleness,
			expectedTier:   schema.CoreTier,
			expectedAction: schema.MaintainAction,
		},
		{
			name:           "dead fork is a legacy fork",
			rec:            schema.RepoRecord{Name: "old-fork", Fork: true},
			status:         schema.DeadStaleness,
			expectedTier:   schema.LegacyForkTier,
			expectedAction: schema.DeleteAction,
		},
		{
			name:           "stale fork is a legacy fork",
			rec:            schema.RepoRecord{Name: "old-fork", Fork: true},
			status:         schema.StaleStaleness,
			expectedTier:   schema.LegacyForkTier,
			expectedAction: schema.DeleteAction,
		},
		{
			name:           "fresh fork stays a fork",
			rec:            schema.RepoRecord{Name: "new-fork", Fork: true},
			status:         schema.ActiveStaleness,
			expectedTier:   schema.ForkTier,
			expectedAction: schema.ReviewAction,
		},
		{
			name:           "dead repo",
			rec:            schema.RepoRecord{Name: "abandoned"},
			status:         schema.DeadStaleness,
			expectedTier:   schema.DeadTier,
			expectedAction: schema.ArchiveOrDeleteAction,
		},
		{
			name:           "stale repo",
			rec:            schema.RepoRecord{Name: "aging"},
			status:         schema.StaleStaleness,
			expectedTier:   schema.StaleTier,
			expectedAction: schema.ArchiveAction,
		},
		{
			name:           "dormant repo",
			rec:            schema.RepoRecord{Name: "napping"},
			status:         schema.DormantStaleness,
			expectedTier:   schema.DormantTier,
			expectedAction: schema.ReviewAction,
		},
		{
			name:           "unknown staleness parks in dormant",
			rec:            schema.RepoRecord{Name: "mystery"},
			status:         schema.UnknownStaleness,
			expectedTier:   schema.DormantTier,
			expectedAction: schema.ReviewAction,
		},
		{
			name:           "active repo",
			rec:            schema.RepoRecord{Name: "busy"},
			status:         schema.ActiveStaleness,
			expectedTier:   schema.ActiveTier,
			expectedAction: schema.MaintainAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := schema.StalenessResult{Status: tt.status}
			result := Classify(tt.rec, st, EmptyServiceDetection(), coreRepos)
			assert.Equal(t, tt.expectedTier, result.Tier)
			assert.Equal(t, tt.expectedAction, result.Action)
		})
	}
}

// TestTierNeedsDeepScan verifies which tiers earn the expensive audits.
func TestTierNeedsDeepScan(t *testing.T) {
	deep := []schema.Tier{schema.CoreTier, schema.ActiveTier, schema.DormantTier}
	shallow := []schema.Tier{schema.StaleTier, schema.DeadTier, schema.LegacyForkTier, schema.ForkTier, schema.ArchivedTier}

	for _, tier := range deep {
		assert.True(t, TierNeedsDeepScan(tier), "tier %s should be deep scanned", tier)
	}
	for _, tier := range shallow {
		assert.False(t, TierNeedsDeepScan(tier), "tier %s should be skipped", tier)
	}
}

// TestClassifyBurnEstimate checks the burn breakdown composition.
func TestClassifyBurnEstimate(t *testing.T) {
	noCore := map[string]struct{}{}

	t.Run("recently pushed active repo earns compute baseline", func(t *testing.T) {
		st := schema.StalenessResult{Status: schema.ActiveStaleness, DaysSincePush: 5}
		result := Classify(schema.RepoRecord{Name: "busy"}, st, EmptyServiceDetection(), noCore)

		assert.Equal(t, schema.CloudRunActiveBase, result.BurnBreakdown[schema.ComputeBurnKey])
		assert.Equal(t, schema.CloudRunActiveBase, result.MonthlyBurnEstimate)
	})

	t.Run("active repo outside push window gets idle baseline", func(t *testing.T) {
		st := schema.StalenessResult{Status: schema.ActiveStaleness, DaysSincePush: 45}
		result := Classify(schema.RepoRecord{Name: "steady"}, st, EmptyServiceDetection(), noCore)

		assert.Equal(t, schema.CloudRunIdleBase, result.BurnBreakdown[schema.ComputeBurnKey])
		assert.Equal(t, 0, result.MonthlyBurnEstimate)
	})

	t.Run("unknown staleness never earns active baseline", func(t *testing.T) {
		st := schema.StalenessResult{Status: schema.UnknownStaleness, DaysSincePush: 0}
		result := Classify(schema.RepoRecord{Name: "mystery"}, st, EmptyServiceDetection(), noCore)

		assert.Equal(t, schema.CloudRunIdleBase, result.BurnBreakdown[schema.ComputeBurnKey])
		assert.Equal(t, 0, result.MonthlyBurnEstimate)
	})

	t.Run("shallow tier has no burn at all", func(t *testing.T) {
		st := schema.StalenessResult{Status: schema.StaleStaleness, DaysSincePush: 200}
		result := Classify(schema.RepoRecord{Name: "aging"}, st, EmptyServiceDetection(), noCore)

		assert.Empty(t, result.BurnBreakdown)
		assert.Equal(t, 0, result.MonthlyBurnEstimate)
	})

	t.Run("paid services add to burn, free ones are excluded", func(t *testing.T) {
		st := schema.StalenessResult{Status: schema.ActiveStaleness, DaysSincePush: 5}
		services := schema.ServiceDetection{
			Services: []string{"sentry", "vercel"},
			ServiceDetails: []schema.ServiceDetail{
				{Service: "sentry", Label: "Sentry", Cost: 0, Category: "Observability"},
				{Service: "vercel", Label: "Vercel", Cost: 20, Category: "Hosting"},
			},
			ThirdPartyCost: 20,
		}
		result := Classify(schema.RepoRecord{Name: "app"}, st, services, noCore)

		assert.Equal(t, 20, result.BurnBreakdown["Vercel"])
		assert.NotContains(t, result.BurnBreakdown, "Sentry")
		assert.Equal(t, schema.CloudRunActiveBase+20, result.MonthlyBurnEstimate)
	})
}

// TestDiskMB checks KB to MB conversion with one decimal place.
func TestDiskMB(t *testing.T) {
	tests := []struct {
		name     string
		sizeKB   int64
		expected float64
	}{
		{name: "zero", sizeKB: 0, expected: 0},
		{name: "one MB", sizeKB: 1024, expected: 1.0},
		{name: "half MB", sizeKB: 512, expected: 0.5},
		{name: "rounds to one decimal", sizeKB: 1536, expected: 1.5},
		{name: "small repo rounds down", sizeKB: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DiskMB(tt.sizeKB), 0.001)
		})
	}
}
