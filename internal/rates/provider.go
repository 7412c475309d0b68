// Package rates publishes the session's exchange-rate reference data.
// Rates are seeded once and never change for the life of the session.
package rates

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
)

// Provider serves the static currency and per-bank rate tables.
type Provider struct {
	rates     []model.ExchangeRate
	bankRates []model.BankExchangeRate
}

// NewProvider returns a provider seeded with the published rates.
func NewProvider() *Provider {
	return &Provider{
		rates:     defaultRates(),
		bankRates: defaultBankRates(),
	}
}

// List returns all published currency rates.
func (p *Provider) List() []model.ExchangeRate {
	out := make([]model.ExchangeRate, len(p.rates))
	copy(out, p.rates)
	return out
}

// BankRates returns the per-bank rate table.
func (p *Provider) BankRates() []model.BankExchangeRate {
	out := make([]model.BankExchangeRate, len(p.bankRates))
	copy(out, p.bankRates)
	return out
}

// Lookup returns the rate for a currency code.
func (p *Provider) Lookup(code string) (model.ExchangeRate, error) {
	for _, r := range p.rates {
		if r.Code == code {
			return r, nil
		}
	}
	return model.ExchangeRate{}, fmt.Errorf("exchange rate for %q: %w", code, common.ErrNotFound)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultRates() []model.ExchangeRate {
	return []model.ExchangeRate{
		{Currency: "US Dollar", Code: "USD", Rate: dec("131.50"), Change: dec("0.15")},
		{Currency: "Euro", Code: "EUR", Rate: dec("142.80"), Change: dec("-0.22")},
		{Currency: "British Pound", Code: "GBP", Rate: dec("167.25"), Change: dec("0.45")},
		{Currency: "UAE Dirham", Code: "AED", Rate: dec("35.80"), Change: dec("0.08")},
	}
}

func defaultBankRates() []model.BankExchangeRate {
	return []model.BankExchangeRate{
		{BankID: "1", BankName: "Commercial Bank of Ethiopia", USDRate: dec("132.50"), EURRate: dec("143.80"), GBPRate: dec("168.25"), AEDRate: dec("36.10")},
		{BankID: "2", BankName: "Dashen Bank", USDRate: dec("131.80"), EURRate: dec("143.20"), GBPRate: dec("167.50"), AEDRate: dec("35.90")},
		{BankID: "3", BankName: "Awash Bank", USDRate: dec("131.50"), EURRate: dec("142.80"), GBPRate: dec("167.25"), AEDRate: dec("35.80")},
		{BankID: "4", BankName: "Bank of Abyssinia", USDRate: dec("132.00"), EURRate: dec("143.50"), GBPRate: dec("167.80"), AEDRate: dec("36.00")},
		{BankID: "5", BankName: "United Bank", USDRate: dec("131.20"), EURRate: dec("142.50"), GBPRate: dec("166.90"), AEDRate: dec("35.70")},
		{BankID: "6", BankName: "Cooperative Bank", USDRate: dec("131.90"), EURRate: dec("143.10"), GBPRate: dec("167.40"), AEDRate: dec("35.85")},
	}
}
