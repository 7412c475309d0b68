package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/directory"
	"github.com/bridgeremit/remit/internal/model"
	"github.com/bridgeremit/remit/internal/wizard"
)

// billCategories maps the --category flag to transaction categories.
var billCategories = map[string]model.Category{
	"utility":  model.CategoryUtility,
	"medical":  model.CategoryMedical,
	"school":   model.CategorySchool,
	"rent":     model.CategoryRent,
	"donation": model.CategoryDonation,
}

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Pay bills and make donations",
	}

	cmd.AddCommand(billsListCmd())
	cmd.AddCommand(billsPayCmd())

	return cmd
}

func billsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List billers and donation organizations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			tw := newTabWriter(out)

			printHeader(out, "Billers")
			fmt.Fprintln(tw, "ID\tNAME\tTYPE")
			for _, b := range directory.Billers() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, b.Name, b.Type)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			printHeader(out, "Donation organizations")
			tw = newTabWriter(out)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, o := range directory.DonationOrgs() {
				fmt.Fprintf(tw, "%s\t%s\n", o.ID, o.Name)
			}
			return tw.Flush()
		},
	}
}

func billsPayCmd() *cobra.Command {
	var (
		category string
		biller   string
		account  string
		amount   string
	)

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay a bill or donate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, ok := billCategories[category]
			if !ok {
				return common.NewUserError("Category must be utility, medical, school, rent, or donation", nil)
			}
			if biller == "" {
				return common.NewUserError("Select a biller with --biller (see remit bills list)", nil)
			}

			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			w := wizard.NewBillPayment(cat, 0)
			w.SelectBiller(biller)
			w.SetAccountNumber(account)
			w.SetAmount(amount)
			if err := w.Advance(); err != nil {
				return common.NewUserError("Enter an amount greater than zero", err)
			}

			if err := settle(cmd.Context(), "Processing payment"); err != nil {
				return err
			}
			txn, err := w.Pay(cmd.Context(), sess)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeader(out, "Payment complete")
			tw := newTabWriter(out)
			fmt.Fprintf(tw, "Paid to\t%s\n", txn.BillerName)
			fmt.Fprintf(tw, "Amount\t%s\n", amountUSD(txn.Amount))
			fmt.Fprintf(tw, "Fee\t%s\n", amountUSD(txn.Fee))
			fmt.Fprintf(tw, "Total\t%s\n", amountUSD(txn.Amount.Add(txn.Fee)))
			fmt.Fprintf(tw, "Reference\t%s\n", txn.ID)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "utility", "bill category (utility, medical, school, rent, donation)")
	cmd.Flags().StringVar(&biller, "biller", "", "biller or organization name")
	cmd.Flags().StringVar(&account, "account", "", "customer reference with the biller")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in USD")

	return cmd
}
