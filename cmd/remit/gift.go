package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/i18n"
	"github.com/bridgeremit/remit/internal/wizard"
)

func giftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gift",
		Short: "Send gift packages",
	}

	cmd.AddCommand(giftListCmd())
	cmd.AddCommand(giftSendCmd())
	cmd.AddCommand(giftEditCmd())

	return cmd
}

func giftListCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the gift catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if lang != "" {
				if err := sess.SetLanguage(lang); err != nil {
					return err
				}
			}

			pkgs, err := sess.Store().ListGiftPackages(cmd.Context())
			if err != nil {
				return err
			}

			lang := i18n.Language(sess.Language())
			out := cmd.OutOrStdout()
			printHeader(out, i18n.T("gift.catalog", lang))
			tw := newTabWriter(out)
			fmt.Fprintln(tw, "ID\tPACKAGE\tPRICE\tITEMS")
			for _, p := range pkgs {
				if !p.Active {
					continue
				}
				title, items := p.Title, p.Items
				if sess.Language() == "am" && p.TitleAm != "" {
					title, items = p.TitleAm, p.ItemsAm
				}
				price := amountUSD(p.Price)
				if p.RequiresCustomAmount() {
					price = i18n.T("gift.customAmount", lang)
				}
				fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", p.ID, p.Icon, title, price, strings.Join(items, ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "catalog language (en, am)")

	return cmd
}

func giftSendCmd() *cobra.Command {
	var (
		pkgID  string
		amount string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Buy and send a gift package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pkgID == "" {
				return common.NewUserError("Select a package with --package (see remit gift list)", nil)
			}

			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			pkg, err := sess.Store().GetGiftPackage(cmd.Context(), pkgID)
			if err != nil {
				return err
			}
			if pkg.RequiresCustomAmount() && amount == "" {
				return common.NewUserError("Package "+pkg.Title+" needs --amount", nil)
			}

			w := wizard.NewGiftOrder(0)
			w.SelectPackage(pkg)
			w.SetCustomAmount(amount)
			w.SetRecipientName(to)
			if err := w.Advance(); err != nil {
				return common.NewUserError("Enter an amount greater than zero", err)
			}

			if err := settle(cmd.Context(), "Processing payment"); err != nil {
				return err
			}
			txn, err := w.Send(cmd.Context(), sess)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeader(out, "Gift sent")
			tw := newTabWriter(out)
			fmt.Fprintf(tw, "Package\t%s\n", pkg.Title)
			fmt.Fprintf(tw, "Recipient\t%s\n", txn.RecipientName)
			fmt.Fprintf(tw, "Amount\t%s\n", amountUSD(txn.Amount))
			fmt.Fprintf(tw, "Fee\t%s\n", amountUSD(txn.Fee))
			fmt.Fprintf(tw, "Reference\t%s\n", txn.ID)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&pkgID, "package", "", "gift package id")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in USD (custom packages)")
	cmd.Flags().StringVar(&to, "to", "", "recipient name (defaults to the package title)")

	return cmd
}

func giftEditCmd() *cobra.Command {
	var (
		title    string
		desc     string
		price    string
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a gift catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			pkg, err := sess.Store().GetGiftPackage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if title != "" {
				pkg.Title = title
			}
			if desc != "" {
				pkg.Description = desc
			}
			if price != "" {
				p, err := decimal.NewFromString(price)
				if err != nil {
					return common.NewUserError("Price must be a number", err)
				}
				pkg.Price = p
			}
			pkg.Active = !inactive

			if err := sess.Store().UpdateGiftPackage(cmd.Context(), pkg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated package %s\n", pkg.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&desc, "description", "", "new description")
	cmd.Flags().StringVar(&price, "price", "", "new price in USD (0 for custom amount)")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "hide the package from the catalog")

	return cmd
}
