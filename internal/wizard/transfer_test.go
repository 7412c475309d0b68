package wizard

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/directory"
	"github.com/bridgeremit/remit/internal/model"
)

// captureRecorder records transactions in memory for assertions.
type captureRecorder struct {
	recorded []*model.Transaction
	onRecord func(txn *model.Transaction)
}

func (r *captureRecorder) Record(_ context.Context, txn *model.Transaction) (model.Notification, error) {
	if r.onRecord != nil {
		r.onRecord(txn)
	}
	r.recorded = append(r.recorded, txn)
	return model.Notification{TransactionID: txn.ID}, nil
}

func newTestTransfer() *Transfer {
	return NewTransfer(directory.NewAccountResolver(0), decimal.RequireFromString("131.50"), 0)
}

func TestTransfer_AmountGuard(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		canMove bool
	}{
		{name: "positive amount", input: "100", canMove: true},
		{name: "zero", input: "0", canMove: false},
		{name: "empty", input: "", canMove: false},
		{name: "non-numeric", input: "garbage", canMove: false},
		{name: "negative", input: "-10", canMove: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestTransfer()
			w.SetAmount(tt.input)
			assert.Equal(t, tt.canMove, w.CanAdvance())
			err := w.Advance()
			if tt.canMove {
				require.NoError(t, err)
				assert.Equal(t, StepMethodDetail, w.Step())
			} else {
				assert.ErrorIs(t, err, ErrGuardUnsatisfied)
				assert.Equal(t, StepAmountEntry, w.Step())
			}
		})
	}
}

func TestTransfer_BankFlow(t *testing.T) {
	w := newTestTransfer()
	ctx := context.Background()

	w.SetAmount("100")
	require.NoError(t, w.Advance())

	// Bank detail incomplete until the account holder resolves.
	bank, ok := directory.BankByID("1")
	require.True(t, ok)
	w.SelectBank(bank)
	w.SetAccountNumber("1000123456789")
	assert.False(t, w.CanAdvance())

	require.NoError(t, w.LookupAccount(ctx))
	assert.Equal(t, "Tadesse Bekele", w.AccountName())
	require.NoError(t, w.Advance())
	assert.Equal(t, StepConfirmation, w.Step())

	// Confirmation is review only.
	require.NoError(t, w.Advance())
	assert.Equal(t, StepPaymentCapture, w.Step())

	// Card must be complete before pay is allowed.
	_, err := w.Pay(ctx, &captureRecorder{})
	assert.ErrorIs(t, err, ErrGuardUnsatisfied)

	w.SetCard(CardDetails{Number: "4242 4242 4242 4242", Expiry: "12/26", CVV: "123", HolderName: "Abebe Kebede"})
	rec := &captureRecorder{}
	txn, err := w.Pay(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, StepComplete, w.Step())
	require.Len(t, rec.recorded, 1)

	assert.Equal(t, model.CategoryBank, txn.Category)
	assert.Equal(t, model.StatusCompleted, txn.Status)
	assert.Equal(t, "Tadesse Bekele", txn.RecipientName)
	assert.Equal(t, "Commercial Bank of Ethiopia", txn.BankName)
	assert.Equal(t, "2.00", txn.Fee.StringFixed(2))
	assert.Equal(t, "13150.00", txn.ReceiveAmount.StringFixed(2))
}

func TestTransfer_CashFlow(t *testing.T) {
	w := newTestTransfer()
	w.SetMethod(DeliverAsCash)
	w.SetAmount("200")
	require.NoError(t, w.Advance())

	assert.False(t, w.CanAdvance())
	w.SetRecipientName("Almaz Hailu")
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())

	w.SetCard(CardDetails{Number: "4242", Expiry: "12/26", CVV: "123", HolderName: "A"})
	txn, err := w.Pay(context.Background(), &captureRecorder{})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryCash, txn.Category)
	assert.Equal(t, "Almaz Hailu", txn.RecipientName)
	assert.Equal(t, "Cash Pickup", txn.Description)
}

func TestTransfer_LookupNotFound(t *testing.T) {
	w := newTestTransfer()
	w.SetAmount("50")
	require.NoError(t, w.Advance())

	bank, _ := directory.BankByID("2")
	w.SelectBank(bank)
	w.SetAccountNumber("555")

	err := w.LookupAccount(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)
	assert.False(t, w.CanAdvance())

	// Recoverable: re-enter and resolve again.
	w.SetAccountNumber("1000234567890")
	require.NoError(t, w.LookupAccount(context.Background()))
	assert.Equal(t, "Almaz Hailu", w.AccountName())
	assert.True(t, w.CanAdvance())
}

func TestTransfer_ChangingInputInvalidatesLookup(t *testing.T) {
	w := newTestTransfer()
	w.SetAmount("50")
	require.NoError(t, w.Advance())

	bank, _ := directory.BankByID("1")
	w.SelectBank(bank)
	w.SetAccountNumber("1000123456789")
	require.NoError(t, w.LookupAccount(context.Background()))
	require.True(t, w.CanAdvance())

	// Editing the account number clears the resolved name.
	w.SetAccountNumber("1000123456780")
	assert.Empty(t, w.AccountName())
	assert.False(t, w.CanAdvance())
}

func TestTransfer_BackPreservesData(t *testing.T) {
	w := newTestTransfer()
	w.SetAmount("75")
	require.NoError(t, w.Advance())

	w.SetMethod(DeliverAsCash)
	w.SetRecipientName("Sofia Ahmed")
	require.NoError(t, w.Advance())

	w.Back()
	assert.Equal(t, StepMethodDetail, w.Step())
	assert.Equal(t, "Sofia Ahmed", w.RecipientName())

	w.Back()
	assert.Equal(t, StepAmountEntry, w.Step())
	assert.Equal(t, "75.00", w.Quote().Principal.StringFixed(2))

	// Back never goes past the first step.
	w.Back()
	assert.Equal(t, StepAmountEntry, w.Step())
}

func TestTransfer_PayRejectsReentry(t *testing.T) {
	w := newTestTransfer()
	w.SetMethod(DeliverAsCash)
	w.SetAmount("10")
	require.NoError(t, w.Advance())
	w.SetRecipientName("X")
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	w.SetCard(CardDetails{Number: "1", Expiry: "2", CVV: "3", HolderName: "4"})

	// A second trigger while the first is still settling must be refused.
	rec := &captureRecorder{}
	rec.onRecord = func(*model.Transaction) {
		_, err := w.Pay(context.Background(), rec)
		assert.ErrorIs(t, err, ErrInFlight)
	}
	_, err := w.Pay(context.Background(), rec)
	require.NoError(t, err)
	assert.Len(t, rec.recorded, 1)
}

// capturedTransfer drives a wizard to the payment step with a complete
// card, ready for settlement.
func capturedTransfer(t *testing.T) *Transfer {
	t.Helper()
	w := newTestTransfer()
	w.SetMethod(DeliverAsCash)
	w.SetAmount("10")
	require.NoError(t, w.Advance())
	w.SetRecipientName("Almaz Hailu")
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	w.SetCard(CardDetails{Number: "4242", Expiry: "12/26", CVV: "123", HolderName: "A"})
	return w
}

func TestTransfer_SettlementRunsConcurrentlyWithReads(t *testing.T) {
	w := capturedTransfer(t)

	settlement, err := w.StartPayment()
	require.NoError(t, err)
	assert.True(t, w.Processing())

	// Hold the settlement open while the owner goroutine keeps reading.
	release := make(chan struct{})
	rec := &captureRecorder{onRecord: func(*model.Transaction) { <-release }}

	done := make(chan struct{})
	var txn *model.Transaction
	var runErr error
	go func() {
		defer close(done)
		txn, runErr = settlement.Run(context.Background(), rec)
	}()

	for i := 0; i < 1000; i++ {
		assert.Equal(t, StepPaymentCapture, w.Step())
		assert.True(t, w.Processing())
		assert.Nil(t, w.Result())
		_ = w.Quote()
	}
	close(release)
	<-done
	require.NoError(t, runErr)

	w.FinishPayment(txn, runErr)
	assert.False(t, w.Processing())
	assert.Equal(t, StepComplete, w.Step())
	assert.Equal(t, txn, w.Result())
	assert.Len(t, rec.recorded, 1)
}

func TestTransfer_FinishPaymentWithErrorKeepsCaptureStep(t *testing.T) {
	w := capturedTransfer(t)

	_, err := w.StartPayment()
	require.NoError(t, err)

	// A second trigger is refused while the first settlement is open.
	_, err = w.StartPayment()
	assert.ErrorIs(t, err, ErrInFlight)

	w.FinishPayment(nil, context.Canceled)
	assert.False(t, w.Processing())
	assert.Equal(t, StepPaymentCapture, w.Step())
	assert.Nil(t, w.Result())

	// Retry succeeds once the failure has been applied.
	settlement, err := w.StartPayment()
	require.NoError(t, err)
	txn, err := settlement.Run(context.Background(), &captureRecorder{})
	require.NoError(t, err)
	w.FinishPayment(txn, nil)
	assert.Equal(t, StepComplete, w.Step())
}

func TestTransfer_Reset(t *testing.T) {
	w := newTestTransfer()
	w.SetAmount("100")
	require.NoError(t, w.Advance())
	bank, _ := directory.BankByID("3")
	w.SelectBank(bank)
	w.SetAccountNumber("1000345678901")

	w.Reset()
	assert.Equal(t, StepAmountEntry, w.Step())
	assert.True(t, w.Quote().IsZero())
	assert.Empty(t, w.AccountNumber())
	assert.Empty(t, w.Bank().ID)
}
