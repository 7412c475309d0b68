// Package storage provides the session-scoped data layer. The store is
// backed by an in-memory SQLite database: it lives exactly as long as
// the session and nothing ever touches disk.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store holds the session's transactions, notifications, recipients,
// and gift package catalog.
type Store struct {
	db *sql.DB
}

// Open creates a new in-memory store with the schema applied and the
// demo data seeded.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// A single connection keeps the in-memory database alive and makes
	// writes strictly sequential, which matches the session model.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.seed(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database; all session data is discarded.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	queries := []string{
		`CREATE TABLE transactions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT UNIQUE NOT NULL,
			category TEXT NOT NULL,
			amount TEXT NOT NULL,
			currency TEXT NOT NULL,
			recipient_name TEXT NOT NULL,
			status TEXT NOT NULL,
			description TEXT,
			bank_name TEXT,
			account_number TEXT,
			biller_name TEXT,
			fee TEXT NOT NULL DEFAULT '0',
			exchange_rate TEXT NOT NULL DEFAULT '0',
			receive_amount TEXT NOT NULL DEFAULT '0',
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX idx_transactions_category ON transactions(category)`,

		`CREATE TABLE notifications (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT UNIQUE NOT NULL,
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			severity TEXT NOT NULL,
			transaction_id TEXT,
			read INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,

		`CREATE TABLE recipients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			bank_account TEXT,
			bank_name TEXT,
			relationship TEXT
		)`,

		`CREATE TABLE gift_packages (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			title_am TEXT,
			description TEXT,
			description_am TEXT,
			price TEXT NOT NULL,
			icon TEXT,
			color TEXT,
			items TEXT,
			items_am TEXT,
			active INTEGER NOT NULL DEFAULT 1
		)`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
