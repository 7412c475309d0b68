package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/model"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show session notifications",
	}

	cmd.AddCommand(notificationsListCmd())
	cmd.AddCommand(notificationsReadCmd())

	return cmd
}

func notificationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			notes, err := sess.Store().ListNotifications(cmd.Context())
			if err != nil {
				return err
			}
			unread, err := sess.Store().UnreadNotificationCount(cmd.Context())
			if err != nil {
				return err
			}

			theme := currentTheme()
			out := cmd.OutOrStdout()
			printHeader(out, fmt.Sprintf("Notifications (%d unread)", unread))
			tw := newTabWriter(out)
			fmt.Fprintln(tw, "ID\t\tTITLE\tMESSAGE")
			for _, n := range notes {
				marker := " "
				if !n.Read {
					marker = theme.StatusPending.Render("●")
				}
				title := n.Title
				switch n.Severity {
				case model.SeveritySuccess:
					title = theme.StatusSuccess.Render(title)
				case model.SeverityFailed:
					title = theme.StatusError.Render(title)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, marker, title, n.Message)
			}
			return tw.Flush()
		},
	}
}

func notificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.Store().MarkNotificationRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as read\n", args[0])
			return nil
		},
	}
}
