package model

import (
	"fmt"
	"time"
)

// Severity tags a notification for rendering.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityPending Severity = "pending"
	SeverityFailed  Severity = "failed"
	SeverityInfo    Severity = "info"
)

// Valid reports whether the severity is a known tag.
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityPending, SeverityFailed, SeverityInfo:
		return true
	}
	return false
}

// Notification is a side-effect record of a transaction's creation.
// Only the Read flag is mutable after creation.
type Notification struct {
	CreatedAt     time.Time
	ID            string
	Title         string
	Message       string
	Severity      Severity
	TransactionID string
	Read          bool
}

// SeverityForStatus derives a notification severity from a transaction
// status at recording time.
func SeverityForStatus(status Status) Severity {
	switch status {
	case StatusCompleted:
		return SeveritySuccess
	case StatusFailed:
		return SeverityFailed
	case StatusPending:
		return SeverityPending
	default:
		return SeverityInfo
	}
}

// NewTransactionNotification synthesizes the notification that accompanies
// a recorded transaction. Title and message wording mirror the transaction
// status at the moment of recording.
func NewTransactionNotification(id string, tx *Transaction, now time.Time) Notification {
	var title, message string
	switch tx.Status {
	case StatusCompleted:
		title = "Transfer Successful"
		message = fmt.Sprintf("Your transfer of $%s to %s has been completed.", tx.Amount.StringFixed(2), tx.RecipientName)
	case StatusFailed:
		title = "Transfer Failed"
		message = fmt.Sprintf("Your transfer of $%s to %s could not be completed.", tx.Amount.StringFixed(2), tx.RecipientName)
	default:
		title = "Transfer Pending"
		message = fmt.Sprintf("Your transfer of $%s to %s is being processed.", tx.Amount.StringFixed(2), tx.RecipientName)
	}

	return Notification{
		ID:            id,
		Title:         title,
		Message:       message,
		Severity:      SeverityForStatus(tx.Status),
		TransactionID: tx.ID,
		CreatedAt:     now,
	}
}
