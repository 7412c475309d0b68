package common

import (
	"context"
	"time"
)

// Sleep waits for the given duration or until the context is canceled.
// All simulated backend delays route through this so they stay interruptible.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
