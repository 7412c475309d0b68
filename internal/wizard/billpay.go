package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
	"github.com/bridgeremit/remit/internal/pricing"
)

// BillStep is a stage of the bill payment flow. The flow is shorter
// than the transfer wizard: selection, then pay, then done.
type BillStep int

const (
	BillSelectionEntry BillStep = iota
	BillDetailAndPay
	BillComplete
)

// BillPayment is the bill payment and donation wizard.
type BillPayment struct {
	captureDelay time.Duration

	step     BillStep
	category model.Category
	biller   string

	accountNumber string
	amountInput   string
	quote         pricing.Quote

	processing bool
	result     *model.Transaction
}

// NewBillPayment creates a bill payment wizard for one bill category
// (utility, medical, school, rent, or donation).
func NewBillPayment(category model.Category, captureDelay time.Duration) *BillPayment {
	b := &BillPayment{category: category, captureDelay: captureDelay}
	b.recalc()
	return b
}

// Step returns the current step.
func (b *BillPayment) Step() BillStep { return b.step }

// Quote returns the derived amounts.
func (b *BillPayment) Quote() pricing.Quote { return b.quote }

// Processing reports whether a payment is in flight.
func (b *BillPayment) Processing() bool { return b.processing }

// Result returns the recorded transaction once the flow completes.
func (b *BillPayment) Result() *model.Transaction { return b.result }

// Biller returns the selected payee name.
func (b *BillPayment) Biller() string { return b.biller }

// SelectBiller picks the organization being paid.
func (b *BillPayment) SelectBiller(name string) {
	b.biller = name
}

// SetAccountNumber records the customer reference with the biller.
func (b *BillPayment) SetAccountNumber(n string) {
	b.accountNumber = n
}

// SetAmount records the amount input; invalid input coerces to zero.
func (b *BillPayment) SetAmount(input string) {
	b.amountInput = input
	b.recalc()
}

func (b *BillPayment) recalc() {
	b.quote = pricing.NewQuote(pricing.ParseAmount(b.amountInput), b.category, pricing.DefaultUSDToETB)
}

// CanAdvance reports whether the current step's guard is satisfied.
// Selection needs a biller and a positive amount.
func (b *BillPayment) CanAdvance() bool {
	switch b.step {
	case BillSelectionEntry:
		return b.biller != "" && !b.quote.IsZero()
	case BillDetailAndPay:
		return !b.processing
	default:
		return false
	}
}

// Advance moves from selection to the pay step.
func (b *BillPayment) Advance() error {
	if b.step != BillSelectionEntry || !b.CanAdvance() {
		return ErrGuardUnsatisfied
	}
	b.step = BillDetailAndPay
	return nil
}

// Back returns to selection, preserving entered data.
func (b *BillPayment) Back() {
	if b.step == BillDetailAndPay {
		b.step = BillSelectionEntry
	}
}

// Pay runs the simulated settlement and records the payment.
func (b *BillPayment) Pay(ctx context.Context, rec Recorder) (*model.Transaction, error) {
	if b.processing {
		return nil, ErrInFlight
	}
	if b.step != BillDetailAndPay || !b.CanAdvance() {
		return nil, ErrGuardUnsatisfied
	}

	b.processing = true
	defer func() { b.processing = false }()

	if err := common.Sleep(ctx, b.captureDelay); err != nil {
		return nil, err
	}

	txn := &model.Transaction{
		ID:            uuid.NewString(),
		Category:      b.category,
		Amount:        b.quote.Principal,
		Currency:      "USD",
		RecipientName: b.biller,
		BillerName:    b.biller,
		AccountNumber: b.accountNumber,
		Status:        model.StatusCompleted,
		Fee:           b.quote.Fee,
		ExchangeRate:  b.quote.Rate,
		ReceiveAmount: b.quote.Receive,
		Description:   "Bill Payment",
		CreatedAt:     time.Now(),
	}
	if b.category == model.CategoryDonation {
		txn.Description = "Donation"
	}

	if _, err := rec.Record(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record bill payment: %w", err)
	}

	b.result = txn
	b.step = BillComplete
	return txn, nil
}

// Reset returns the wizard to its initial state.
func (b *BillPayment) Reset() {
	*b = *NewBillPayment(b.category, b.captureDelay)
}
