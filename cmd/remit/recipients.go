package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
)

func recipientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipients",
		Short: "Manage saved recipients",
		Long: `Saved recipients belong to the signed-in user. Guest sessions see
an empty list; pass --email to sign in.`,
	}

	cmd.AddCommand(recipientsListCmd())
	cmd.AddCommand(recipientsAddCmd())

	return cmd
}

func recipientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved recipients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recips, err := sess.Recipients(cmd.Context())
			if err != nil {
				return err
			}
			if len(recips) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved recipients. Sign in with --email to see yours.")
				return nil
			}

			out := cmd.OutOrStdout()
			printHeader(out, "Saved recipients")
			tw := newTabWriter(out)
			fmt.Fprintln(tw, "NAME\tPHONE\tBANK\tACCOUNT\tRELATIONSHIP")
			for _, r := range recips {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Phone, r.BankName, r.BankAccount, r.Relationship)
			}
			return tw.Flush()
		},
	}
}

func recipientsAddCmd() *cobra.Command {
	var r model.Recipient

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a recipient",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if r.Name == "" {
				return common.NewUserError("Recipient needs --name", nil)
			}

			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.AddRecipient(cmd.Context(), &r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", r.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&r.Name, "name", "", "recipient name")
	cmd.Flags().StringVar(&r.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&r.BankName, "bank", "", "bank name")
	cmd.Flags().StringVar(&r.BankAccount, "account", "", "bank account number")
	cmd.Flags().StringVar(&r.Relationship, "relationship", "", "relationship to you")

	return cmd
}
