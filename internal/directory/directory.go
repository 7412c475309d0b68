// Package directory holds the static destination data: banks, billers,
// donation organizations, and the simulated account-holder lookup.
package directory

import (
	"github.com/bridgeremit/remit/internal/model"
)

// Banks returns the destination banks available for transfers.
func Banks() []model.Bank {
	return []model.Bank{
		{ID: "1", Name: "Commercial Bank of Ethiopia", Code: "CBE"},
		{ID: "2", Name: "Dashen Bank", Code: "DB"},
		{ID: "3", Name: "Awash Bank", Code: "AB"},
		{ID: "4", Name: "Bank of Abyssinia", Code: "BOA"},
		{ID: "5", Name: "United Bank", Code: "UB"},
		{ID: "6", Name: "Cooperative Bank of Ethiopia", Code: "COOP"},
	}
}

// BankByID returns the bank with the given identifier, if any.
func BankByID(id string) (model.Bank, bool) {
	for _, b := range Banks() {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bank{}, false
}

// Billers returns the payable organizations.
func Billers() []model.Biller {
	return []model.Biller{
		{ID: "1", Name: "Ethio Telecom", Type: model.BillerUtility},
		{ID: "2", Name: "EEPCO Electricity", Type: model.BillerUtility},
		{ID: "3", Name: "Addis Ababa Water", Type: model.BillerUtility},
		{ID: "4", Name: "Tikur Anbessa Hospital", Type: model.BillerMedical},
		{ID: "5", Name: "St. Paul Hospital", Type: model.BillerMedical},
		{ID: "6", Name: "Addis Ababa University", Type: model.BillerSchool},
		{ID: "7", Name: "International School of Addis", Type: model.BillerSchool},
	}
}

// BillersByType filters billers to one bill type.
func BillersByType(t model.BillerType) []model.Biller {
	var out []model.Biller
	for _, b := range Billers() {
		if b.Type == t {
			out = append(out, b)
		}
	}
	return out
}

// DonationOrgs returns the charitable organizations accepting donations.
func DonationOrgs() []model.DonationOrg {
	return []model.DonationOrg{
		{ID: "1", Name: "Ethiopia Red Cross"},
		{ID: "2", Name: "Orphans Relief Fund"},
		{ID: "3", Name: "Education for All"},
		{ID: "4", Name: "Clean Water Initiative"},
	}
}
