package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GiftPackage is a catalog entry for a pre-assembled gift, not a
// transaction. A zero price marks a custom package whose amount the
// sender supplies.
type GiftPackage struct {
	ID            string
	Title         string
	TitleAm       string
	Description   string
	DescriptionAm string
	Icon          string
	Color         string
	Items         []string
	ItemsAm       []string
	Price         decimal.Decimal
	Active        bool
}

// RequiresCustomAmount reports whether the sender must enter an amount.
func (g *GiftPackage) RequiresCustomAmount() bool {
	return g.Price.IsZero()
}

// Validate checks catalog invariants before a package is stored.
func (g *GiftPackage) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("gift package: missing ID")
	}
	if g.Title == "" {
		return fmt.Errorf("gift package %s: missing title", g.ID)
	}
	if g.Price.IsNegative() {
		return fmt.Errorf("gift package %s: price cannot be negative, got %s", g.ID, g.Price)
	}
	return nil
}
