package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/rates"
)

func ratesCmd() *cobra.Command {
	var banks bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show exchange rates to Ethiopian Birr",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider := rates.NewProvider()
			out := cmd.OutOrStdout()
			theme := currentTheme()

			if banks {
				printHeader(out, "Bank exchange rates (1 unit in ETB)")
				tw := newTabWriter(out)
				fmt.Fprintln(tw, "ID\tBANK\tUSD\tEUR\tGBP\tAED")
				for _, r := range provider.BankRates() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
						r.BankID, r.BankName,
						r.USDRate.StringFixed(2), r.EURRate.StringFixed(2),
						r.GBPRate.StringFixed(2), r.AEDRate.StringFixed(2))
				}
				return tw.Flush()
			}

			printHeader(out, "Exchange rates (1 unit in ETB)")
			tw := newTabWriter(out)
			fmt.Fprintln(tw, "CODE\tCURRENCY\tRATE\tCHANGE")
			for _, r := range provider.List() {
				change := r.Change.StringFixed(2)
				if r.Change.IsPositive() {
					change = theme.StatusSuccess.Render("+" + change)
				} else if r.Change.IsNegative() {
					change = theme.StatusError.Render(change)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Code, r.Currency, r.Rate.StringFixed(2), change)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&banks, "banks", false, "show the per-bank rate table")

	return cmd
}
