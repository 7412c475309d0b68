// Package pricing computes fees and derived amounts for transfers,
// bill payments, and gifts. Everything here is a pure function over
// decimal inputs so it can be called from any layer.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bridgeremit/remit/internal/model"
)

// DefaultUSDToETB is the fallback exchange rate used when no published
// rate is available for the selected currency.
var DefaultUSDToETB = decimal.NewFromFloat(131.50)

// Fee rates per transaction category.
var (
	transferFeeRate = decimal.NewFromFloat(0.02)
	billFeeRate     = decimal.NewFromFloat(0.01)
	giftFeeRate     = decimal.NewFromFloat(0.03)
)

// FeeRate returns the percentage fee applied to a category: 2% for
// transfers, 1% for bill payments, 3% for gifts.
func FeeRate(category model.Category) decimal.Decimal {
	switch category {
	case model.CategoryBank, model.CategoryCash:
		return transferFeeRate
	case model.CategoryGift:
		return giftFeeRate
	default:
		return billFeeRate
	}
}

// Quote holds the amounts derived from a principal.
type Quote struct {
	Principal decimal.Decimal
	Fee       decimal.Decimal
	Total     decimal.Decimal
	Receive   decimal.Decimal
	Rate      decimal.Decimal
}

// NewQuote derives fee, total, and receive amount from a principal.
// The receive amount applies the exchange rate only for transfer
// categories; bills and gifts pay out the principal as entered. A
// non-positive rate falls back to DefaultUSDToETB.
func NewQuote(principal decimal.Decimal, category model.Category, rate decimal.Decimal) Quote {
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	if !rate.IsPositive() {
		rate = DefaultUSDToETB
	}

	fee := principal.Mul(FeeRate(category))
	receive := principal
	if category.IsTransfer() {
		receive = principal.Mul(rate)
	}

	return Quote{
		Principal: principal,
		Fee:       fee,
		Total:     principal.Add(fee),
		Receive:   receive,
		Rate:      rate,
	}
}

// IsZero reports whether the quote carries no money. The wizard keeps
// its advance action disabled while this is true.
func (q Quote) IsZero() bool {
	return !q.Principal.IsPositive()
}

// ParseAmount normalizes user input to a principal. Empty, unparsable,
// and negative input all coerce to zero rather than erroring; callers
// gate on the zero value. This is a deliberate policy carried over from
// the product's lenient demo behavior.
func ParseAmount(input string) decimal.Decimal {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "$"))
	if input == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(input)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
