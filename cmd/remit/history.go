package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/model"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the session transaction log",
		Long: `List recorded transactions, newest first. The log starts with the
seeded demo activity and grows as you send, pay, and gift.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var txns []model.Transaction
			if limit > 0 {
				txns, err = sess.Store().RecentTransactions(cmd.Context(), limit)
			} else {
				txns, err = sess.Store().ListTransactions(cmd.Context())
			}
			if err != nil {
				return err
			}

			theme := currentTheme()
			out := cmd.OutOrStdout()
			printHeader(out, "Transactions")
			tw := newTabWriter(out)
			fmt.Fprintln(tw, "DATE\tRECIPIENT\tCATEGORY\tAMOUNT\tFEE\tSTATUS")
			for _, t := range txns {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.CreatedAt.Format("2006-01-02 15:04"),
					t.RecipientName,
					t.Category,
					amountUSD(t.Amount),
					amountUSD(t.Fee),
					statusLabel(theme, t.Status))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show only the n most recent transactions")

	return cmd
}
