package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgeremit/remit/internal/config"
)

// runCommand executes a command with buffered output and simulated
// delays zeroed out.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()

	config.SetDefaults()
	viper.Set(config.KeyLookupDelay, 0)
	viper.Set(config.KeyCaptureDelay, 0)
	viper.Set(config.KeyAuthDelay, 0)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestRatesCmd(t *testing.T) {
	out := runCommand(t, ratesCmd())

	assert.Contains(t, out, "USD")
	assert.Contains(t, out, "131.50")
	assert.Contains(t, out, "British Pound")
}

func TestRatesCmdBanks(t *testing.T) {
	out := runCommand(t, ratesCmd(), "--banks")

	assert.Contains(t, out, "Commercial Bank of Ethiopia")
	assert.Contains(t, out, "132.50")
}

func TestHistoryCmd(t *testing.T) {
	out := runCommand(t, historyCmd())

	// Seeded demo log, newest first.
	assert.Contains(t, out, "Tadesse Bekele")
	assert.Contains(t, out, "completed")
}

func TestBillsPayCmd(t *testing.T) {
	out := runCommand(t, billsPayCmd(),
		"--category", "utility",
		"--biller", "EEPCO Electricity",
		"--amount", "150")

	assert.Contains(t, out, "Payment complete")
	assert.Contains(t, out, "$150.00")
	assert.Contains(t, out, "$1.50")
}

func TestBillsPayCmdRejectsBadCategory(t *testing.T) {
	cmd := billsPayCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--category", "groceries", "--biller", "x", "--amount", "10"})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestSendCmdFlags(t *testing.T) {
	cmd := sendCmd()

	flag := cmd.Flag("amount")
	assert.NotNil(t, flag)
	assert.Equal(t, "bank", cmd.Flag("method").DefValue)
}

func TestNotificationsCmdSubcommands(t *testing.T) {
	cmd := notificationsCmd()

	names := make([]string, 0, 2)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "read")
}
