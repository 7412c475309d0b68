package tui

import "github.com/bridgeremit/remit/internal/model"

// lookupResultMsg carries the outcome of an account holder lookup.
type lookupResultMsg struct {
	err  error
	name string
}

// paymentDoneMsg carries the outcome of the simulated settlement.
type paymentDoneMsg struct {
	err error
	txn *model.Transaction
}
