package storage

import "github.com/ecotrack/ecotrack-backend/internal/model"

// MockRepository is an in-memory implementation of Repository for testing.
type MockRepository struct {
	transactions map[string][]model.Transaction

	// Hooks for test assertions
	SaveCalled bool
	LastSaved  []model.Transaction

	// Error injection for testing error paths
	SaveErr error
	LoadErr error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{
		transactions: make(map[string][]model.Transaction),
	}
}

// SaveTransactions records the batch in memory
func (m *MockRepository) SaveTransactions(userID string, txs []model.Transaction) error {
	m.SaveCalled = true
	m.LastSaved = txs
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.transactions[userID] = append(m.transactions[userID], txs...)
	return nil
}

// TransactionsByUser returns the stored history for a user
func (m *MockRepository) TransactionsByUser(userID string) ([]model.Transaction, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.transactions[userID], nil
}

// CountTransactions returns the number of stored transactions for a user
func (m *MockRepository) CountTransactions(userID string) (int, error) {
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	return len(m.transactions[userID]), nil
}

// Close is a no-op for the mock
func (m *MockRepository) Close() error {
	return nil
}
