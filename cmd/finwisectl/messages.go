package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	messagesCmd := &cobra.Command{Use: "messages", Short: "Messaging operations"}

	// send
	var senderID, recipientID, content string
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"senderId":    senderID,
				"recipientId": recipientID,
				"content":     content,
			}
			data, err := doPostJSON(apiFlag+"/api/messages", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	sendCmd.Flags().StringVarP(&senderID, "from", "f", "", "Sender ID (required)")
	sendCmd.Flags().StringVarP(&recipientID, "to", "t", "", "Recipient ID (required)")
	sendCmd.Flags().StringVarP(&content, "content", "c", "", "Message text (required)")
	_ = sendCmd.MarkFlagRequired("from")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("content")
	messagesCmd.AddCommand(sendCmd)

	// threads
	threadsCmd := &cobra.Command{
		Use:   "threads USER_ID",
		Short: "List a participant's conversation threads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/users/%s/threads", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	messagesCmd.AddCommand(threadsCmd)

	// open
	openCmd := &cobra.Command{
		Use:   "open USER_ID CONTACT_ID",
		Short: "Open a thread, seeding the expert greeting on first contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(fmt.Sprintf("%s/api/users/%s/threads/%s", apiFlag, args[0], args[1]), map[string]interface{}{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	messagesCmd.AddCommand(openCmd)

	// read
	readCmd := &cobra.Command{
		Use:   "read USER_ID CONTACT_ID",
		Short: "Mark a contact's messages as read",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(fmt.Sprintf("%s/api/users/%s/threads/%s/read", apiFlag, args[0], args[1]), map[string]interface{}{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	messagesCmd.AddCommand(readCmd)

	rootCmd.AddCommand(messagesCmd)
}
