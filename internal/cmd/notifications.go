package cmd

import (
	"fmt"

	"github.com/socfin/societyctl/internal/ux"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "Your notifications in the active society",
}

// notificationsListCmd lists notifications, newest first
var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireSociety(app)
		if err != nil {
			return err
		}

		notifications, err := app.Client.ListNotifications(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, notifications); done || err != nil {
			return err
		}

		if len(notifications) == 0 {
			fmt.Println("No notifications.")
			return nil
		}

		if unread, err := app.Client.UnreadCount(cmd.Context(), soc.ID); err == nil && unread > 0 {
			fmt.Printf("%d unread\n", unread)
		}

		table := ux.NewTable("", "ID", "TITLE", "MESSAGE", "WHEN")
		for _, n := range notifications {
			marker := "•"
			if n.Read {
				marker = ""
			}
			table.AddRow(marker, n.ID, n.Title, n.Message, n.CreatedAt)
		}
		return renderTable(table)
	},
}

// notificationsReadCmd marks one notification read
var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		if err := requireUser(app); err != nil {
			return err
		}

		if err := app.Client.MarkRead(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Marked as read.")
		return nil
	},
}

// notificationsReadAllCmd marks every notification in the society read
var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark all notifications as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireSociety(app)
		if err != nil {
			return err
		}

		count, err := app.Client.MarkAllRead(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Marked %d notifications as read.\n", count)
		return nil
	},
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
	rootCmd.AddCommand(notificationsCmd)
}
