package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
)

// ListRecipients returns all saved payees in insertion order. Guest
// filtering happens at the session layer, not here.
func (s *Store) ListRecipients(ctx context.Context) ([]model.Recipient, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, COALESCE(bank_account, ''), COALESCE(bank_name, ''),
			COALESCE(relationship, '')
		 FROM recipients ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Recipient
	for rows.Next() {
		var r model.Recipient
		if err := rows.Scan(&r.ID, &r.Name, &r.Phone, &r.BankAccount,
			&r.BankName, &r.Relationship); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipients: %w", err)
	}
	return out, nil
}

// AddRecipient saves a new payee, assigning an identifier if absent.
func (s *Store) AddRecipient(ctx context.Context, r *model.Recipient) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("%w: recipient", ErrNilParameter)
	}
	if err := validateString(r.Name, "name"); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO recipients (id, name, phone, bank_account, bank_name, relationship)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Phone, r.BankAccount, r.BankName, r.Relationship); err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("recipient %s: %w", r.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to add recipient %s: %w", r.Name, err)
	}
	return nil
}
