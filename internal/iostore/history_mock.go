package iostore

import (
	"time"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetHistoryStore implements the StoreManager interface.
func (m *MockStoreManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginAudit implements the HistoryStore interface.
func (m *MockHistoryStore) BeginAudit(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndAudit implements the HistoryStore interface.
func (m *MockHistoryStore) EndAudit(auditID int64, endTime time.Time, totalRepos, apiCallsUsed int) error {
	args := m.Called(auditID, endTime, totalRepos, apiCallsUsed)
	return args.Error(0)
}

// RecordRepo implements the HistoryStore interface.
func (m *MockHistoryStore) RecordRepo(auditID int64, audit schema.RepoAudit) error {
	args := m.Called(auditID, audit)
	return args.Error(0)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllAuditRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllAuditRuns() ([]schema.AuditRunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.AuditRunRecord)
	return records, args.Error(1)
}

// GetAllRepoClassifications implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllRepoClassifications() ([]schema.RepoClassificationRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.RepoClassificationRecord)
	return records, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
