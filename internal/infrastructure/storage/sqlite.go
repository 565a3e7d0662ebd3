// Package storage provides SQLite persistence for imported transaction
// history. Products are stored as a JSON column alongside the scalar
// transaction fields; summaries are always recomputed from the full
// history, never cached here.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ecotrack/ecotrack-backend/internal/model"
)

// Storage provides SQLite database access for transaction history.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveTransactions inserts or replaces a batch of enriched transactions
// for a user. Re-importing the same transaction ID overwrites the prior
// row rather than duplicating it.
func (s *Storage) SaveTransactions(userID string, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO transactions
	(id, user_id, merchant_id, external_user_id, date, total_amount,
	 currency, carbon_footprint, eco_points, products_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range txs {
		productsJSON, err := json.Marshal(t.Products)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to encode products for %s: %w", t.ID, err)
		}

		if _, err := stmt.Exec(
			t.ID,
			userID,
			t.MerchantID,
			t.ExternalUserID,
			t.Date,
			t.TotalAmount,
			t.Currency,
			t.CarbonFootprint,
			t.EcoPoints,
			string(productsJSON),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save transaction %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// TransactionsByUser returns the full stored history for a user, oldest
// first.
func (s *Storage) TransactionsByUser(userID string) ([]model.Transaction, error) {
	rows, err := s.db.Query(`
	SELECT id, merchant_id, external_user_id, date, total_amount,
	       currency, carbon_footprint, eco_points, products_json
	FROM transactions WHERE user_id = ? ORDER BY date ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var productsJSON string
		if err := rows.Scan(
			&t.ID,
			&t.MerchantID,
			&t.ExternalUserID,
			&t.Date,
			&t.TotalAmount,
			&t.Currency,
			&t.CarbonFootprint,
			&t.EcoPoints,
			&productsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if productsJSON != "" {
			if err := json.Unmarshal([]byte(productsJSON), &t.Products); err != nil {
				return nil, fmt.Errorf("failed to decode products for %s: %w", t.ID, err)
			}
		}
		txs = append(txs, t)
	}

	return txs, rows.Err()
}

// CountTransactions returns the number of stored transactions for a user
func (s *Storage) CountTransactions(userID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM transactions WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}
