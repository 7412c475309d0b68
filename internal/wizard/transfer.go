package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/directory"
	"github.com/bridgeremit/remit/internal/model"
	"github.com/bridgeremit/remit/internal/pricing"
)

// Step is a stage of the transfer flow.
type Step int

const (
	// StepAmountEntry collects the principal.
	StepAmountEntry Step = iota
	// StepMethodDetail collects bank or pickup details.
	StepMethodDetail
	// StepConfirmation shows the review summary.
	StepConfirmation
	// StepPaymentCapture collects the card.
	StepPaymentCapture
	// StepComplete is terminal.
	StepComplete
)

// DeliveryMethod selects how the recipient receives the money.
type DeliveryMethod string

const (
	DeliverToBank DeliveryMethod = "bank"
	DeliverAsCash DeliveryMethod = "cash"
)

// Transfer is the send-money wizard. Zero value is not usable; create
// one with NewTransfer.
type Transfer struct {
	resolver     *directory.AccountResolver
	captureDelay time.Duration
	rate         decimal.Decimal

	step   Step
	method DeliveryMethod

	amountInput string
	quote       pricing.Quote

	// Bank delivery detail.
	bank          model.Bank
	accountNumber string
	accountName   string

	// Cash pickup detail.
	recipientName string

	card       CardDetails
	processing bool
	result     *model.Transaction
}

// NewTransfer creates a transfer wizard at the amount entry step.
// rate is the published rate for the send currency; captureDelay is the
// simulated settlement time.
func NewTransfer(resolver *directory.AccountResolver, rate decimal.Decimal, captureDelay time.Duration) *Transfer {
	t := &Transfer{
		resolver:     resolver,
		captureDelay: captureDelay,
		rate:         rate,
		method:       DeliverToBank,
	}
	t.recalc()
	return t
}

// Step returns the current step.
func (t *Transfer) Step() Step { return t.step }

// Method returns the selected delivery method.
func (t *Transfer) Method() DeliveryMethod { return t.method }

// Quote returns the derived amounts for the entered principal.
func (t *Transfer) Quote() pricing.Quote { return t.quote }

// Processing reports whether a payment is in flight. Controls that
// trigger payment must stay disabled while this is true.
func (t *Transfer) Processing() bool { return t.processing }

// Result returns the recorded transaction once the flow completes.
func (t *Transfer) Result() *model.Transaction { return t.result }

// AccountName returns the resolved holder name, if any.
func (t *Transfer) AccountName() string { return t.accountName }

// Bank returns the selected destination bank.
func (t *Transfer) Bank() model.Bank { return t.bank }

// AccountNumber returns the entered account number.
func (t *Transfer) AccountNumber() string { return t.accountNumber }

// RecipientName returns the cash pickup recipient.
func (t *Transfer) RecipientName() string { return t.recipientName }

// Card returns the captured card details.
func (t *Transfer) Card() CardDetails { return t.card }

// SetMethod selects bank or cash delivery.
func (t *Transfer) SetMethod(m DeliveryMethod) {
	t.method = m
}

// SetAmount records the principal input and recomputes the quote.
// Invalid input coerces to a zero principal, which keeps Continue
// disabled.
func (t *Transfer) SetAmount(input string) {
	t.amountInput = input
	t.recalc()
}

func (t *Transfer) recalc() {
	t.quote = pricing.NewQuote(pricing.ParseAmount(t.amountInput), t.category(), t.rate)
}

func (t *Transfer) category() model.Category {
	if t.method == DeliverAsCash {
		return model.CategoryCash
	}
	return model.CategoryBank
}

// SelectBank picks the destination bank and invalidates any previously
// resolved account holder.
func (t *Transfer) SelectBank(b model.Bank) {
	t.bank = b
	t.accountName = ""
}

// SetAccountNumber records the destination account and invalidates any
// previously resolved holder name.
func (t *Transfer) SetAccountNumber(n string) {
	t.accountNumber = n
	t.accountName = ""
}

// SetRecipientName records the cash pickup recipient.
func (t *Transfer) SetRecipientName(name string) {
	t.recipientName = name
}

// SetCard records the payment capture input.
func (t *Transfer) SetCard(c CardDetails) {
	t.card = c
}

// Lookup is a pending account resolution. It captures the inputs at
// start time so Run can execute on another goroutine without touching
// the Transfer.
type Lookup struct {
	resolver      *directory.AccountResolver
	bankID        string
	accountNumber string
}

// StartLookup captures the selected bank and account number for an
// off-loop resolution. Feed the resolved name back with ApplyLookup.
func (t *Transfer) StartLookup() Lookup {
	return Lookup{
		resolver:      t.resolver,
		bankID:        t.bank.ID,
		accountNumber: t.accountNumber,
	}
}

// Run resolves the captured account. A not-found result is
// recoverable: the caller fixes the input and looks up again.
func (l Lookup) Run(ctx context.Context) (string, error) {
	return l.resolver.Resolve(ctx, l.bankID, l.accountNumber)
}

// ApplyLookup stores a resolved holder name. Must be called from the
// goroutine that owns the Transfer.
func (t *Transfer) ApplyLookup(name string) {
	t.accountName = name
}

// LookupAccount resolves the account holder synchronously. Interactive
// callers use StartLookup/Run/ApplyLookup instead so the resolution
// can run off the update loop.
func (t *Transfer) LookupAccount(ctx context.Context) error {
	name, err := t.StartLookup().Run(ctx)
	if err != nil {
		t.accountName = ""
		return err
	}
	t.ApplyLookup(name)
	return nil
}

// CanAdvance reports whether the current step's guard is satisfied.
func (t *Transfer) CanAdvance() bool {
	switch t.step {
	case StepAmountEntry:
		return !t.quote.IsZero()
	case StepMethodDetail:
		if t.method == DeliverToBank {
			return t.bank.ID != "" && t.accountNumber != "" && t.accountName != ""
		}
		return t.recipientName != ""
	case StepConfirmation:
		// Review only.
		return true
	case StepPaymentCapture:
		return t.card.Complete() && !t.processing
	default:
		return false
	}
}

// Advance moves to the next step if the guard passes. The final step
// is reached through Pay, not Advance.
func (t *Transfer) Advance() error {
	if t.step >= StepPaymentCapture {
		return ErrGuardUnsatisfied
	}
	if !t.CanAdvance() {
		return ErrGuardUnsatisfied
	}
	t.step++
	return nil
}

// Back returns to the previous step. Entered data is preserved.
func (t *Transfer) Back() {
	if t.step > StepAmountEntry && t.step != StepComplete {
		t.step--
	}
}

// Settlement is a payment in flight. The transaction is built when the
// settlement starts, so Run never reads the Transfer and is safe to
// execute on another goroutine.
type Settlement struct {
	delay time.Duration
	txn   *model.Transaction
}

// StartPayment checks the payment guards, marks the payment in flight,
// and returns the settlement to run off the update loop. The outcome
// must be fed back through FinishPayment.
func (t *Transfer) StartPayment() (*Settlement, error) {
	if t.processing {
		return nil, ErrInFlight
	}
	if t.step != StepPaymentCapture || !t.card.Complete() {
		return nil, ErrGuardUnsatisfied
	}

	t.processing = true
	return &Settlement{delay: t.captureDelay, txn: t.buildTransaction()}, nil
}

// Run performs the simulated settlement and records the transaction.
// The simulated capture always succeeds once the delay elapses.
func (s *Settlement) Run(ctx context.Context, rec Recorder) (*model.Transaction, error) {
	if err := common.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}
	if _, err := rec.Record(ctx, s.txn); err != nil {
		return nil, fmt.Errorf("failed to record transfer: %w", err)
	}
	return s.txn, nil
}

// FinishPayment applies the settlement outcome and re-enables the pay
// control. A failed or canceled settlement leaves the wizard at the
// capture step so the user can retry. Must be called from the
// goroutine that owns the Transfer.
func (t *Transfer) FinishPayment(txn *model.Transaction, err error) {
	t.processing = false
	if err != nil || txn == nil {
		return
	}
	t.result = txn
	t.step = StepComplete
}

// Pay runs the simulated settlement synchronously. Interactive callers
// use StartPayment/Run/FinishPayment instead so the settlement can run
// off the update loop.
func (t *Transfer) Pay(ctx context.Context, rec Recorder) (*model.Transaction, error) {
	s, err := t.StartPayment()
	if err != nil {
		return nil, err
	}
	txn, err := s.Run(ctx, rec)
	t.FinishPayment(txn, err)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (t *Transfer) buildTransaction() *model.Transaction {
	txn := &model.Transaction{
		ID:            uuid.NewString(),
		Category:      t.category(),
		Amount:        t.quote.Principal,
		Currency:      "USD",
		Status:        model.StatusCompleted,
		Fee:           t.quote.Fee,
		ExchangeRate:  t.quote.Rate,
		ReceiveAmount: t.quote.Receive,
		CreatedAt:     time.Now(),
	}

	if t.method == DeliverToBank {
		txn.RecipientName = t.accountName
		txn.BankName = t.bank.Name
		txn.AccountNumber = t.accountNumber
		txn.Description = "Bank Transfer - " + t.bank.Name
	} else {
		txn.RecipientName = t.recipientName
		txn.Description = "Cash Pickup"
	}
	return txn
}

// Reset returns the wizard to its initial state, clearing every
// transient field.
func (t *Transfer) Reset() {
	*t = *NewTransfer(t.resolver, t.rate, t.captureDelay)
}
