package model

import "github.com/shopspring/decimal"

// ExchangeRate is the published rate for one foreign currency against
// the Ethiopian birr, with its daily movement. Reference data only.
type ExchangeRate struct {
	Currency string
	Code     string
	Rate     decimal.Decimal
	Change   decimal.Decimal
}

// BankExchangeRate carries one bank's buying rates per currency.
type BankExchangeRate struct {
	BankID   string
	BankName string
	USDRate  decimal.Decimal
	EURRate  decimal.Decimal
	GBPRate  decimal.Decimal
	AEDRate  decimal.Decimal
}

// Bank is a destination bank for transfers.
type Bank struct {
	ID   string
	Name string
	Code string
}

// BillerType groups billers by the kind of bill they collect.
type BillerType string

const (
	BillerUtility BillerType = "utility"
	BillerMedical BillerType = "medical"
	BillerSchool  BillerType = "school"
	BillerRent    BillerType = "rent"
)

// Biller is a payable organization.
type Biller struct {
	ID   string
	Name string
	Type BillerType
}

// DonationOrg is a charitable organization accepting donations.
type DonationOrg struct {
	ID   string
	Name string
}
