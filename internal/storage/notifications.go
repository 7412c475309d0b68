package storage

import (
	"context"
	"fmt"

	"github.com/bridgeremit/remit/internal/model"
)

// ListNotifications returns all notifications, most recent first.
func (s *Store) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, message, severity, COALESCE(transaction_id, ''), read, created_at
		 FROM notifications ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		var severity string
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &severity,
			&n.TransactionID, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Severity = model.Severity(severity)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return out, nil
}

// MarkNotificationRead sets the read flag on a notification. It is
// idempotent, and a missing identifier is treated as already satisfied
// rather than an error.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return nil
}

// UnreadNotificationCount returns how many notifications are unread.
func (s *Store) UnreadNotificationCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE read = 0`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return n, nil
}
