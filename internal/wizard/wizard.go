// Package wizard implements the ordered input-collection flows that end
// in one committing payment action. The machines here hold all flow
// state and guard every advance; the presentation layer only renders
// them and relays input.
package wizard

import (
	"context"
	"errors"

	"github.com/bridgeremit/remit/internal/model"
)

// Recorder commits a completed transaction to the session log.
type Recorder interface {
	Record(ctx context.Context, txn *model.Transaction) (model.Notification, error)
}

// ErrInFlight is returned when a payment is triggered while one is
// already being processed. The processing flag gates double submission.
var ErrInFlight = errors.New("payment already in progress")

// ErrGuardUnsatisfied is returned by Advance when the current step's
// completeness guard fails.
var ErrGuardUnsatisfied = errors.New("step is incomplete")

// CardDetails is the payment capture input. All four fields are
// required before the pay action is allowed.
type CardDetails struct {
	Number     string
	Expiry     string
	CVV        string
	HolderName string
}

// Complete reports whether every card field has been entered.
func (c CardDetails) Complete() bool {
	return c.Number != "" && c.Expiry != "" && c.CVV != "" && c.HolderName != ""
}
