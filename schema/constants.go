package schema

// Custom string types for type safety.
type (
	// Tier represents the classification tier of a repo.
	Tier string

	// Action represents the recommended action for a repo.
	Action string

	// StalenessStatus represents the age bucket of a repo's last push.
	StalenessStatus string

	// WorkflowHealth represents the CI health of a repo.
	WorkflowHealth string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for audit history.
	DatabaseBackend string
)

// All classification tiers, mutually exclusive and priority ordered.
const (
	CoreTier       Tier = "CORE"
	ActiveTier     Tier = "ACTIVE"
	DormantTier    Tier = "DORMANT"
	StaleTier      Tier = "STALE"
	DeadTier       Tier = "DEAD"
	LegacyForkTier Tier = "LEGACY_FORK"
	ForkTier       Tier = "FORK"
	ArchivedTier   Tier = "ARCHIVED"
)

// All recommended actions.
const (
	MaintainAction        Action = "MAINTAIN"
	ReviewAction          Action = "REVIEW"
	ArchiveAction         Action = "ARCHIVE"
	ArchiveOrDeleteAction Action = "ARCHIVE_OR_DELETE"
	DeleteAction          Action = "DELETE"
	NoneAction            Action = "NONE"
)

// All staleness statuses, ordered from freshest to oldest. UnknownStaleness
// marks repos whose last-push timestamp could not be parsed.
const (
	ActiveStaleness  StalenessStatus = "ACTIVE"
	DormantStaleness StalenessStatus = "DORMANT"
	StaleStaleness   StalenessStatus = "STALE"
	DeadStaleness    StalenessStatus = "DEAD"
	UnknownStaleness StalenessStatus = "UNKNOWN"
)

// All workflow health levels.
const (
	HealthyWorkflows  WorkflowHealth = "HEALTHY"
	DegradedWorkflows WorkflowHealth = "DEGRADED"
	FailingWorkflows  WorkflowHealth = "FAILING"
	UnknownWorkflows  WorkflowHealth = "UNKNOWN"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Staleness thresholds in days since last push.
const (
	DormantDays = 90      // older than this -> DORMANT
	StaleDays   = 180     // 6 months -> candidate for archive
	DeadDays    = 365 * 2 // 2 years -> candidate for deletion

	// ActivePushDays bounds the "recently pushed" window that earns the
	// compute-platform active baseline in the burn estimate.
	ActivePushDays = 30
)

// Burn baselines in dollars per month.
const (
	CloudRunIdleBase   = 0 // scale-to-zero
	CloudRunActiveBase = 3 // occasional cold starts / registry storage
	CIBase             = 0 // free tier

	// Burn breakdown keys for the platform baselines.
	ComputeBurnKey = "Cloud Run"
	CIBurnKey      = "CI/CD"
)

// WorkflowSampleSize is how many recent workflow runs the health check samples.
const WorkflowSampleSize = 5

// TierPriority orders tiers for report output (CORE first, ARCHIVED last).
var TierPriority = map[Tier]int{
	CoreTier:       0,
	ActiveTier:     1,
	DormantTier:    2,
	StaleTier:      3,
	DeadTier:       4,
	LegacyForkTier: 5,
	ForkTier:       6,
	ArchivedTier:   7,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// StalenessRecommendations maps each status to its informational
// recommendation text. The authoritative action comes from classification.
var StalenessRecommendations = map[StalenessStatus]string{
	ActiveStaleness:  "KEEP",
	DormantStaleness: "REVIEW",
	StaleStaleness:   "ARCHIVE",
	DeadStaleness:    "DELETE or ARCHIVE",
	UnknownStaleness: "FIX PUSH TIMESTAMP",
}
