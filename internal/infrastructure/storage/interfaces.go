package storage

import "github.com/ecotrack/ecotrack-backend/internal/model"

// Repository is the transaction-history store. The engine itself is a
// pure function of its inputs; this is the caller-side history it is
// re-run against on every summary request.
type Repository interface {
	// SaveTransactions inserts or replaces a batch of enriched
	// transactions for a user
	SaveTransactions(userID string, txs []model.Transaction) error

	// TransactionsByUser returns the full stored history for a user,
	// oldest first
	TransactionsByUser(userID string) ([]model.Transaction, error)

	// CountTransactions returns the number of stored transactions for a
	// user
	CountTransactions(userID string) (int, error)

	Close() error
}
