package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/config"
	"github.com/bridgeremit/remit/internal/directory"
	"github.com/bridgeremit/remit/internal/rates"
	"github.com/bridgeremit/remit/internal/tui"
	"github.com/bridgeremit/remit/internal/wizard"
)

func sendCmd() *cobra.Command {
	var (
		amount  string
		method  string
		bankID  string
		account string
		to      string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send money to Ethiopia",
		Long: `Walk through the transfer wizard: amount, delivery details,
review, and payment. With --amount the wizard runs non-interactively
from flags instead of the TUI.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			provider := rates.NewProvider()
			rate, err := provider.Lookup(sessionCurrency())
			if err != nil {
				return err
			}
			resolver := directory.NewAccountResolver(config.LookupDelay())

			if amount == "" {
				w := wizard.NewTransfer(resolver, rate.Rate, config.CaptureDelay())
				return tui.Run(cmd.Context(), sess, w)
			}

			// Non-interactive path: the settlement bar replaces the
			// wizard's own delay.
			w := wizard.NewTransfer(resolver, rate.Rate, 0)
			w.SetAmount(amount)
			if err := w.Advance(); err != nil {
				return common.NewUserError("Enter an amount greater than zero", err)
			}

			switch wizard.DeliveryMethod(method) {
			case wizard.DeliverToBank:
				bank, ok := directory.BankByID(bankID)
				if !ok {
					return common.NewUserError("Unknown bank id "+bankID, nil)
				}
				w.SelectBank(bank)
				w.SetAccountNumber(account)
				fmt.Fprintln(cmd.OutOrStdout(), "Verifying account...")
				if err := w.LookupAccount(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Account holder: %s\n", w.AccountName())
			case wizard.DeliverAsCash:
				if to == "" {
					return common.NewUserError("Cash pickup needs --to with the recipient name", nil)
				}
				w.SetMethod(wizard.DeliverAsCash)
				w.SetAmount(amount)
				w.SetRecipientName(to)
			default:
				return common.NewUserError("Delivery method must be bank or cash", nil)
			}

			if err := w.Advance(); err != nil {
				return err
			}
			if err := w.Advance(); err != nil {
				return err
			}
			w.SetCard(demoCard(sess.User().Name))

			if err := settle(cmd.Context(), "Processing payment"); err != nil {
				return err
			}
			txn, err := w.Pay(cmd.Context(), sess)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeader(out, "Transfer complete")
			tw := newTabWriter(out)
			fmt.Fprintf(tw, "Recipient\t%s\n", txn.RecipientName)
			fmt.Fprintf(tw, "Amount\t%s\n", amountUSD(txn.Amount))
			fmt.Fprintf(tw, "Fee\t%s\n", amountUSD(txn.Fee))
			fmt.Fprintf(tw, "Total\t%s\n", amountUSD(txn.Amount.Add(txn.Fee)))
			if txn.Category.IsTransfer() {
				fmt.Fprintf(tw, "Recipient gets\t%s ETB\n", txn.ReceiveAmount.StringFixed(2))
			}
			fmt.Fprintf(tw, "Reference\t%s\n", txn.ID)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount in USD; set to skip the TUI")
	cmd.Flags().StringVar(&method, "method", "bank", "delivery method (bank, cash)")
	cmd.Flags().StringVar(&bankID, "bank", "", "destination bank id (see remit rates --banks)")
	cmd.Flags().StringVar(&account, "account", "", "destination account number")
	cmd.Flags().StringVar(&to, "to", "", "recipient name for cash pickup")

	return cmd
}

// demoCard stands in for real payment capture outside the TUI.
func demoCard(holder string) wizard.CardDetails {
	if holder == "" {
		holder = "Guest User"
	}
	return wizard.CardDetails{
		Number:     "4242 4242 4242 4242",
		Expiry:     "12/30",
		CVV:        "123",
		HolderName: holder,
	}
}
