package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bridgeremit/remit/internal/session"
	"github.com/bridgeremit/remit/internal/wizard"
)

// Run starts the send-money wizard and blocks until it exits.
func Run(ctx context.Context, sess *session.Service, w *wizard.Transfer) error {
	p := tea.NewProgram(New(sess, w), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard exited with error: %w", err)
	}
	return nil
}
