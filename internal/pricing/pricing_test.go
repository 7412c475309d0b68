package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgeremit/remit/internal/model"
)

func TestFeeRate(t *testing.T) {
	tests := []struct {
		name     string
		category model.Category
		want     string
	}{
		{name: "bank transfer", category: model.CategoryBank, want: "0.02"},
		{name: "cash pickup", category: model.CategoryCash, want: "0.02"},
		{name: "utility bill", category: model.CategoryUtility, want: "0.01"},
		{name: "medical bill", category: model.CategoryMedical, want: "0.01"},
		{name: "school fees", category: model.CategorySchool, want: "0.01"},
		{name: "donation", category: model.CategoryDonation, want: "0.01"},
		{name: "rent", category: model.CategoryRent, want: "0.01"},
		{name: "gift", category: model.CategoryGift, want: "0.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeeRate(tt.category).String())
		})
	}
}

func TestNewQuote_BankTransfer(t *testing.T) {
	// $100 at 131.50: fee 2.00, total 102.00, receive 13150.00.
	q := NewQuote(decimal.NewFromInt(100), model.CategoryBank, decimal.NewFromFloat(131.50))

	assert.Equal(t, "2.00", q.Fee.StringFixed(2))
	assert.Equal(t, "102.00", q.Total.StringFixed(2))
	assert.Equal(t, "13150.00", q.Receive.StringFixed(2))
	assert.False(t, q.IsZero())
}

func TestNewQuote_BillKeepsPrincipal(t *testing.T) {
	q := NewQuote(decimal.NewFromInt(150), model.CategoryUtility, decimal.NewFromFloat(131.50))

	assert.Equal(t, "1.50", q.Fee.StringFixed(2))
	assert.Equal(t, "151.50", q.Total.StringFixed(2))
	// Bills pay out in the entered currency; no exchange applies.
	assert.Equal(t, "150.00", q.Receive.StringFixed(2))
}

func TestNewQuote_GiftFee(t *testing.T) {
	q := NewQuote(decimal.NewFromInt(50), model.CategoryGift, decimal.Zero)

	assert.Equal(t, "1.50", q.Fee.StringFixed(2))
	assert.Equal(t, "51.50", q.Total.StringFixed(2))
	assert.Equal(t, "50.00", q.Receive.StringFixed(2))
}

func TestNewQuote_ZeroAndNegative(t *testing.T) {
	q := NewQuote(decimal.Zero, model.CategoryBank, decimal.NewFromFloat(131.50))
	assert.True(t, q.IsZero())
	assert.True(t, q.Fee.IsZero())
	assert.True(t, q.Total.IsZero())
	assert.True(t, q.Receive.IsZero())

	q = NewQuote(decimal.NewFromInt(-20), model.CategoryBank, decimal.NewFromFloat(131.50))
	assert.True(t, q.IsZero())
	assert.True(t, q.Total.IsZero())
}

func TestNewQuote_DefaultRate(t *testing.T) {
	q := NewQuote(decimal.NewFromInt(10), model.CategoryBank, decimal.Zero)
	require.Equal(t, DefaultUSDToETB.String(), q.Rate.String())
	assert.Equal(t, "1315.00", q.Receive.StringFixed(2))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain integer", input: "100", want: "100"},
		{name: "decimal", input: "42.50", want: "42.5"},
		{name: "leading dollar sign", input: "$25", want: "25"},
		{name: "surrounding whitespace", input: "  7 ", want: "7"},
		{name: "empty", input: "", want: "0"},
		{name: "non-numeric", input: "abc", want: "0"},
		{name: "negative coerces to zero", input: "-50", want: "0"},
		{name: "explicit zero", input: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input).String())
		})
	}
}
