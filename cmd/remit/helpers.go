package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bridgeremit/remit/internal/config"
	"github.com/bridgeremit/remit/internal/model"
	"github.com/bridgeremit/remit/internal/session"
	"github.com/bridgeremit/remit/internal/storage"
	"github.com/bridgeremit/remit/internal/tui/themes"
)

// openSession boots a fresh session store seeded with demo data and
// signs in if --email was given. The returned cleanup closes the store.
func openSession(cmd *cobra.Command) (*session.Service, func(), error) {
	store, err := storage.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}
	cleanup := func() { _ = store.Close() }

	sess := session.NewService(store, config.AuthDelay())
	email, _ := cmd.Root().PersistentFlags().GetString("email")
	if email != "" {
		if _, err := sess.SignIn(cmd.Context(), email, "demo"); err != nil {
			cleanup()
			return nil, nil, err
		}
	} else {
		sess.ContinueAsGuest()
	}
	return sess, cleanup, nil
}

// newTabWriter returns a tabwriter configured the way all list
// commands print tables.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// settle renders a progress bar over the settlement delay so the
// non-interactive payment commands aren't just silent sleeps.
func settle(ctx context.Context, label string) error {
	delay := config.CaptureDelay()
	if delay <= 0 {
		return ctx.Err()
	}

	const ticks = 20
	bar := progressbar.NewOptions(ticks,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
	step := delay / ticks
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step):
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return nil
}

// statusLabel colors a transaction status for terminal output.
func statusLabel(theme themes.Theme, status model.Status) string {
	switch status {
	case model.StatusCompleted:
		return theme.StatusSuccess.Render(string(status))
	case model.StatusFailed:
		return theme.StatusError.Render(string(status))
	default:
		return theme.StatusPending.Render(string(status))
	}
}

func currentTheme() themes.Theme {
	return themes.Default
}

// amountUSD prints a USD amount the way the app shows money.
func amountUSD(d interface{ StringFixed(int32) string }) string {
	return "$" + d.StringFixed(2)
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render(title))
}

// sessionCurrency is the send-side currency for new transactions.
func sessionCurrency() string {
	return viper.GetString(config.KeyCurrency)
}
