package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_SeedsDemoData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	txns, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 5)
	// Most recent first.
	assert.Equal(t, "1", txns[0].ID)
	assert.Equal(t, model.CategoryBank, txns[0].Category)
	assert.Equal(t, "5", txns[4].ID)

	notes, err := s.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 4)
	assert.Equal(t, "Transfer Successful", notes[0].Title)

	recipients, err := s.ListRecipients(ctx)
	require.NoError(t, err)
	assert.Len(t, recipients, 4)

	gifts, err := s.ListGiftPackages(ctx)
	require.NoError(t, err)
	require.Len(t, gifts, 6)
	assert.True(t, gifts[5].RequiresCustomAmount())
	assert.False(t, gifts[0].RequiresCustomAmount())
}

func TestRecordTransaction(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before, err := s.TransactionCount(ctx)
	require.NoError(t, err)
	notesBefore, err := s.ListNotifications(ctx)
	require.NoError(t, err)

	txn := &model.Transaction{
		ID:            "tx-new",
		Category:      model.CategoryBank,
		Amount:        decimal.NewFromInt(100),
		Currency:      "USD",
		RecipientName: "Tadesse Bekele",
		Status:        model.StatusCompleted,
		BankName:      "Commercial Bank of Ethiopia",
		AccountNumber: "1000123456789",
		Fee:           decimal.NewFromInt(2),
		ExchangeRate:  decimal.RequireFromString("131.50"),
		ReceiveAmount: decimal.NewFromInt(13150),
		CreatedAt:     time.Now(),
	}

	note, err := s.RecordTransaction(ctx, txn)
	require.NoError(t, err)
	assert.Equal(t, "tx-new", note.TransactionID)
	assert.Equal(t, model.SeveritySuccess, note.Severity)

	// Exactly one new row in each log, transaction first in the list.
	after, err := s.TransactionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)

	notesAfter, err := s.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notesAfter, len(notesBefore)+1)
	assert.Equal(t, note.ID, notesAfter[0].ID)

	txns, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tx-new", txns[0].ID)

	got, err := s.GetTransaction(ctx, "tx-new")
	require.NoError(t, err)
	assert.Equal(t, "100", got.Amount.String())
	assert.Equal(t, "131.5", got.ExchangeRate.String())
}

func TestRecordTransaction_InvalidLeavesNothingBehind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before, err := s.TransactionCount(ctx)
	require.NoError(t, err)

	txn := &model.Transaction{
		ID:            "tx-bad",
		Category:      model.CategoryBank,
		Amount:        decimal.Zero, // invalid
		Currency:      "USD",
		RecipientName: "Nobody",
		Status:        model.StatusCompleted,
		CreatedAt:     time.Now(),
	}
	_, err = s.RecordTransaction(ctx, txn)
	require.Error(t, err)

	after, err := s.TransactionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGetTransaction_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetTransaction(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRecentTransactions(t *testing.T) {
	s := openTestStore(t)

	recent, err := s.RecentTransactions(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "1", recent[0].ID)
	assert.Equal(t, "3", recent[2].ID)

	_, err = s.RecentTransactions(context.Background(), -1)
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestMarkNotificationRead_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	unreadBefore, err := s.UnreadNotificationCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, unreadBefore)

	require.NoError(t, s.MarkNotificationRead(ctx, "1"))
	unread, err := s.UnreadNotificationCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	// Marking twice is a no-op.
	require.NoError(t, s.MarkNotificationRead(ctx, "1"))
	unread, err = s.UnreadNotificationCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	// Unknown identifiers are treated as already satisfied.
	require.NoError(t, s.MarkNotificationRead(ctx, "does-not-exist"))
}

func TestAddRecipient(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r := &model.Recipient{Name: "Sara Tesfaye", Phone: "+251 955 000 111", Relationship: "Friend"}
	require.NoError(t, s.AddRecipient(ctx, r))
	assert.NotEmpty(t, r.ID)

	all, err := s.ListRecipients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Sara Tesfaye", all[4].Name)

	err = s.AddRecipient(ctx, &model.Recipient{Phone: "+251"})
	assert.Error(t, err)
}

func TestAddRecipient_DuplicateID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// "1" is already seeded.
	err := s.AddRecipient(ctx, &model.Recipient{ID: "1", Name: "Someone Else"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	all, err := s.ListRecipients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUpdateGiftPackage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	pkg, err := s.GetGiftPackage(ctx, "1")
	require.NoError(t, err)

	pkg.Title = "Birthday Deluxe"
	pkg.Price = decimal.NewFromInt(60)
	require.NoError(t, s.UpdateGiftPackage(ctx, pkg))

	got, err := s.GetGiftPackage(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Birthday Deluxe", got.Title)
	assert.Equal(t, "60", got.Price.String())
	assert.Equal(t, pkg.Items, got.Items)

	// Catalog size is unchanged; the record was replaced in place.
	all, err := s.ListGiftPackages(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	missing := *pkg
	missing.ID = "99"
	err = s.UpdateGiftPackage(ctx, &missing)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
