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

// GiftStep is a stage of the gift purchase flow. Like bill payment:
// selection, then pay, then done.
type GiftStep int

const (
	GiftSelectionEntry GiftStep = iota
	GiftDetailAndPay
	GiftComplete
)

// GiftOrder is the gift package purchase flow. A package with a zero
// price requires a custom amount before the send action enables; a
// priced package fixes the amount and ignores custom input.
type GiftOrder struct {
	captureDelay time.Duration

	step          GiftStep
	pkg           *model.GiftPackage
	recipientName string
	customInput   string
	quote         pricing.Quote

	processing bool
	result     *model.Transaction
}

// NewGiftOrder creates an empty gift order.
func NewGiftOrder(captureDelay time.Duration) *GiftOrder {
	return &GiftOrder{captureDelay: captureDelay}
}

// Step returns the current step.
func (g *GiftOrder) Step() GiftStep { return g.step }

// Quote returns the derived amounts for the current selection.
func (g *GiftOrder) Quote() pricing.Quote { return g.quote }

// Processing reports whether a payment is in flight.
func (g *GiftOrder) Processing() bool { return g.processing }

// Result returns the recorded transaction once the order completes.
func (g *GiftOrder) Result() *model.Transaction { return g.result }

// Package returns the selected catalog entry, nil when none.
func (g *GiftOrder) Package() *model.GiftPackage { return g.pkg }

// SelectPackage picks a catalog entry and recomputes the quote.
func (g *GiftOrder) SelectPackage(pkg *model.GiftPackage) {
	g.pkg = pkg
	g.recalc()
}

// SetRecipientName records who receives the gift.
func (g *GiftOrder) SetRecipientName(name string) {
	g.recipientName = name
}

// SetCustomAmount records the sender-supplied amount. It only affects
// packages that require one; invalid input coerces to zero.
func (g *GiftOrder) SetCustomAmount(input string) {
	g.customInput = input
	g.recalc()
}

func (g *GiftOrder) recalc() {
	principal := pricing.ParseAmount(g.customInput)
	if g.pkg != nil && !g.pkg.RequiresCustomAmount() {
		principal = g.pkg.Price
	}
	g.quote = pricing.NewQuote(principal, model.CategoryGift, pricing.DefaultUSDToETB)
}

// CanSend reports whether the send action is enabled: a package is
// selected, the amount is positive, and no payment is in flight.
func (g *GiftOrder) CanSend() bool {
	return g.pkg != nil && !g.quote.IsZero() && !g.processing
}

// CanAdvance reports whether the current step's guard is satisfied.
func (g *GiftOrder) CanAdvance() bool {
	switch g.step {
	case GiftSelectionEntry:
		return g.CanSend()
	case GiftDetailAndPay:
		return !g.processing
	default:
		return false
	}
}

// Advance moves from selection to the pay step.
func (g *GiftOrder) Advance() error {
	if g.step != GiftSelectionEntry || !g.CanAdvance() {
		return ErrGuardUnsatisfied
	}
	g.step = GiftDetailAndPay
	return nil
}

// Back returns to selection, preserving the entered data.
func (g *GiftOrder) Back() {
	if g.step == GiftDetailAndPay {
		g.step = GiftSelectionEntry
	}
}

// Send runs the simulated settlement and records the gift purchase.
func (g *GiftOrder) Send(ctx context.Context, rec Recorder) (*model.Transaction, error) {
	if g.processing {
		return nil, ErrInFlight
	}
	if g.step != GiftDetailAndPay || !g.CanSend() {
		return nil, ErrGuardUnsatisfied
	}

	g.processing = true
	defer func() { g.processing = false }()

	if err := common.Sleep(ctx, g.captureDelay); err != nil {
		return nil, err
	}

	recipient := g.recipientName
	if recipient == "" {
		recipient = g.pkg.Title
	}

	txn := &model.Transaction{
		ID:            uuid.NewString(),
		Category:      model.CategoryGift,
		Amount:        g.quote.Principal,
		Currency:      "USD",
		RecipientName: recipient,
		Status:        model.StatusCompleted,
		Fee:           g.quote.Fee,
		ExchangeRate:  g.quote.Rate,
		ReceiveAmount: g.quote.Receive,
		Description:   g.pkg.Title,
		CreatedAt:     time.Now(),
	}

	if _, err := rec.Record(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record gift order: %w", err)
	}

	g.result = txn
	g.step = GiftComplete
	return txn, nil
}

// Reset clears the order.
func (g *GiftOrder) Reset() {
	*g = *NewGiftOrder(g.captureDelay)
}
