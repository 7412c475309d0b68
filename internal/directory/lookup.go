package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/bridgeremit/remit/internal/common"
)

// Account numbers long enough to pass the lenient demo check resolve to
// a placeholder holder name instead of failing.
const minAccountNumberLength = 10

// PlaceholderHolderName is returned for unknown accounts in lenient mode.
const PlaceholderHolderName = "Demo Account Holder"

// knownAccounts maps account numbers to their holder names.
var knownAccounts = map[string]string{
	"1000123456789": "Tadesse Bekele",
	"1000234567890": "Almaz Hailu",
	"1000345678901": "Mekonnen Tadesse",
}

// AccountResolver simulates the bank's account-holder lookup. Results
// are deterministic: the same inputs always resolve the same way.
type AccountResolver struct {
	delay time.Duration
}

// NewAccountResolver creates a resolver with the given simulated delay.
func NewAccountResolver(delay time.Duration) *AccountResolver {
	return &AccountResolver{delay: delay}
}

// Resolve returns the holder name for a (bank, account number) pair.
// Unknown accounts of at least ten digits resolve to a placeholder name;
// shorter unknown numbers report ErrAccountNotFound. The error is
// recoverable: callers re-enter input and resolve again.
func (r *AccountResolver) Resolve(ctx context.Context, bankID, accountNumber string) (string, error) {
	if bankID == "" || accountNumber == "" {
		return "", fmt.Errorf("account lookup: %w", common.ErrInvalidAccount)
	}

	if err := common.Sleep(ctx, r.delay); err != nil {
		return "", err
	}

	if name, ok := knownAccounts[accountNumber]; ok {
		return name, nil
	}
	if len(accountNumber) >= minAccountNumberLength {
		return PlaceholderHolderName, nil
	}
	return "", common.ErrAccountNotFound
}
