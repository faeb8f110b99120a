package main

import (
	"fmt"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/pkg/errs"
	"careerlaunch/internal/state"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "List, send and acknowledge notifications",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return appFrom(cmd.Context()).notifications.Init(cmd.Context())
	},
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every notification, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap := appFrom(cmd.Context()).notifications.Snapshot()

		fmt.Println(titleStyle.Render(fmt.Sprintf("Notifications (%d unread)", snap.UnreadCount)))
		if len(snap.Notifications) == 0 {
			fmt.Println(mutedStyle.Render("No notifications yet"))
			return nil
		}
		for _, n := range snap.Notifications {
			marker := mutedStyle.Render("  ")
			if !n.Read {
				marker = unreadStyle.Render("* ")
			}
			fmt.Printf("%s%s %s\n", marker, labelStyle.Render(n.Title), mutedStyle.Render(n.Timestamp.Format("Jan 2 15:04")))
			fmt.Printf("  %s\n", valueStyle.Render(n.Content))
		}
		return nil
	},
}

var (
	sendJobTitle string
	sendCompany  string
	sendUserName string
)

var notificationsSendCmd = &cobra.Command{
	Use:       "send <type>",
	Short:     "Send a notification of the given type",
	Args:      cobra.ExactArgs(1),
	ValidArgs: typeNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := notification.Type(args[0])
		data, err := payloadFromFlags(t)
		if err != nil {
			return err
		}

		n, err := appFrom(cmd.Context()).notifications.SendNotification(cmd.Context(), t, data)
		if errs.Is(err, state.ErrNotificationDisabled) {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("%s notifications are disabled, nothing sent", t)))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Sent:"), valueStyle.Render(n.Title))
		return nil
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := appFrom(cmd.Context()).notifications.MarkAllAsRead(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(labelStyle.Render("All notifications marked as read"))
		return nil
	},
}

func init() {
	f := notificationsSendCmd.Flags()
	f.StringVar(&sendJobTitle, "job-title", "", "job title shown in the message")
	f.StringVar(&sendCompany, "company", "", "company shown in the message")
	f.StringVar(&sendUserName, "user", "", "recipient name")

	notificationsCmd.AddCommand(notificationsListCmd, notificationsSendCmd, notificationsReadAllCmd)
}

func payloadFromFlags(t notification.Type) (notification.Payload, error) {
	switch t {
	case notification.TypeApplicationSubmission, notification.TypeApplicationReview:
		return notification.ApplicationData{UserName: sendUserName, JobTitle: sendJobTitle, Company: sendCompany}, nil
	case notification.TypeInterviewInvitation:
		return notification.InterviewData{UserName: sendUserName, JobTitle: sendJobTitle, Company: sendCompany}, nil
	case notification.TypeApplicationRejection:
		return notification.RejectionData{UserName: sendUserName, JobTitle: sendJobTitle, Company: sendCompany}, nil
	case notification.TypeOther:
		return notification.OtherData{}, nil
	}
	return nil, fmt.Errorf("unknown notification type %q, want one of %v", t, typeNames())
}

func typeNames() []string {
	names := make([]string, 0, len(notification.AllTypes))
	for _, t := range notification.AllTypes {
		names = append(names, string(t))
	}
	return names
}
