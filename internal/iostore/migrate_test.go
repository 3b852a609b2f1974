package iostore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bluefalconink/chad/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrateHistorySQLite runs migrations up and back down on a fresh file.
func TestMigrateHistorySQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	// Migrate to latest
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))

	// Re-running is a no-op
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))

	// Roll everything back
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 0))

	// Migrate to a specific version
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 1))
}

// TestMigrateHistoryIndexesUsable verifies the store still works after
// migrations added the indexes.
func TestMigrateHistoryIndexesUsable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))

	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	auditID, err := store.BeginAudit(time.Now(), map[string]any{"owner": "alice"})
	require.NoError(t, err)
	require.NoError(t, store.RecordRepo(auditID, sampleAudit("alice/busy")))

	rows, err := store.GetAllRepoClassifications()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

// TestMigrateHistoryNoneBackend is rejected.
func TestMigrateHistoryNoneBackend(t *testing.T) {
	assert.Error(t, MigrateHistory(schema.NoneBackend, "", -1))
}
