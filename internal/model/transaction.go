package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category identifies the kind of money movement a transaction represents.
type Category string

const (
	// CategoryBank is a cross-border bank transfer.
	CategoryBank Category = "bank"
	// CategoryCash is a cash pickup transfer.
	CategoryCash Category = "cash"
	// CategoryUtility is a utility bill payment.
	CategoryUtility Category = "utility"
	// CategoryMedical is a medical bill payment.
	CategoryMedical Category = "medical"
	// CategorySchool is a school fee payment.
	CategorySchool Category = "school"
	// CategoryDonation is a donation to an organization.
	CategoryDonation Category = "donation"
	// CategoryRent is a rent payment.
	CategoryRent Category = "rent"
	// CategoryGift is a gift package purchase.
	CategoryGift Category = "gift"
)

// Valid reports whether the category is one of the known kinds.
func (c Category) Valid() bool {
	switch c {
	case CategoryBank, CategoryCash, CategoryUtility, CategoryMedical,
		CategorySchool, CategoryDonation, CategoryRent, CategoryGift:
		return true
	}
	return false
}

// IsTransfer reports whether the category moves money cross-currency.
// Only transfer categories carry a meaningful receive amount.
func (c Category) IsTransfer() bool {
	return c == CategoryBank || c == CategoryCash
}

// Status is the settlement state of a transaction.
type Status string

const (
	// StatusPending means the transaction is still being processed.
	StatusPending Status = "pending"
	// StatusCompleted means the transaction settled successfully.
	StatusCompleted Status = "completed"
	// StatusFailed means the transaction was declined or errored.
	StatusFailed Status = "failed"
)

// Valid reports whether the status is a known state.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether a status change is legal. Pending may
// move to completed or failed; terminal states never change again.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusCompleted || next == StatusFailed
}

// Transaction represents one completed or pending money movement.
// Records are immutable once recorded.
type Transaction struct {
	CreatedAt     time.Time
	ID            string
	Category      Category
	Currency      string
	RecipientName string
	Status        Status
	Description   string

	// Populated depending on category.
	BankName      string
	AccountNumber string
	BillerName    string

	Amount        decimal.Decimal
	Fee           decimal.Decimal
	ExchangeRate  decimal.Decimal
	ReceiveAmount decimal.Decimal
}

// Validate checks the invariants required before a transaction is recorded.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction: missing ID")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("transaction %s: unknown category %q", t.ID, t.Category)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("transaction %s: unknown status %q", t.ID, t.Status)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %s: amount must be positive, got %s", t.ID, t.Amount)
	}
	if t.Fee.IsNegative() {
		return fmt.Errorf("transaction %s: fee cannot be negative, got %s", t.ID, t.Fee)
	}
	if t.RecipientName == "" {
		return fmt.Errorf("transaction %s: missing recipient name", t.ID)
	}
	if t.Currency == "" {
		return fmt.Errorf("transaction %s: missing currency", t.ID)
	}
	return nil
}
