package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
)

// RecordTransaction appends a transaction to the session log and
// synthesizes exactly one notification for it, in one SQL transaction.
// Callers never observe a transaction without its notification.
func (s *Store) RecordTransaction(ctx context.Context, txn *model.Transaction) (model.Notification, error) {
	if err := validateContext(ctx); err != nil {
		return model.Notification{}, err
	}
	if txn == nil {
		return model.Notification{}, fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if err := txn.Validate(); err != nil {
		return model.Notification{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	note := model.NewTransactionNotification(uuid.NewString(), txn, time.Now())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (id, category, amount, currency, recipient_name, status,
			description, bank_name, account_number, biller_name, fee, exchange_rate,
			receive_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, string(txn.Category), txn.Amount.String(), txn.Currency,
		txn.RecipientName, string(txn.Status), txn.Description, txn.BankName,
		txn.AccountNumber, txn.BillerName, txn.Fee.String(),
		txn.ExchangeRate.String(), txn.ReceiveAmount.String(), txn.CreatedAt,
	); err != nil {
		return model.Notification{}, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notifications (id, title, message, severity, transaction_id, read, created_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?)`,
		note.ID, note.Title, note.Message, string(note.Severity), note.TransactionID, note.CreatedAt,
	); err != nil {
		return model.Notification{}, fmt.Errorf("failed to insert notification for %s: %w", txn.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Notification{}, fmt.Errorf("failed to commit record: %w", err)
	}
	return note, nil
}

// ListTransactions returns the session log, most recent first.
func (s *Store) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, `SELECT `+transactionColumns+`
		FROM transactions ORDER BY seq DESC`)
}

// RecentTransactions returns up to n of the most recent transactions.
func (s *Store) RecentTransactions(ctx context.Context, n int) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	return s.queryTransactions(ctx, `SELECT `+transactionColumns+`
		FROM transactions ORDER BY seq DESC LIMIT ?`, n)
}

// GetTransaction returns one transaction by ID.
func (s *Store) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+transactionColumns+`
		FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return txn, nil
}

// TransactionCount returns the number of recorded transactions.
func (s *Store) TransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

const transactionColumns = `id, category, amount, currency, recipient_name, status,
	description, bank_name, account_number, biller_name, fee, exchange_rate,
	receive_amount, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn                                model.Transaction
		category, status                   string
		amount, fee, rate, receive         string
		description, bank, account, biller sql.NullString
	)
	if err := row.Scan(&txn.ID, &category, &amount, &txn.Currency, &txn.RecipientName,
		&status, &description, &bank, &account, &biller, &fee, &rate, &receive,
		&txn.CreatedAt); err != nil {
		return nil, err
	}

	txn.Category = model.Category(category)
	txn.Status = model.Status(status)
	txn.Description = description.String
	txn.BankName = bank.String
	txn.AccountNumber = account.String
	txn.BillerName = biller.String

	var err error
	if txn.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
	}
	if txn.Fee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("corrupt fee %q: %w", fee, err)
	}
	if txn.ExchangeRate, err = decimal.NewFromString(rate); err != nil {
		return nil, fmt.Errorf("corrupt exchange rate %q: %w", rate, err)
	}
	if txn.ReceiveAmount, err = decimal.NewFromString(receive); err != nil {
		return nil, fmt.Errorf("corrupt receive amount %q: %w", receive, err)
	}
	return &txn, nil
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return out, nil
}
