package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	meetingsCmd := &cobra.Command{Use: "meetings", Short: "Meeting operations"}

	// schedule
	var userID, expertID, date, timeOfDay, topic, notes string
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a meeting with an expert",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"userId":   userID,
				"expertId": expertID,
				"date":     date,
				"time":     timeOfDay,
				"topic":    topic,
				"notes":    notes,
			}
			data, err := doPostJSON(apiFlag+"/api/meetings", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	scheduleCmd.Flags().StringVarP(&userID, "user", "u", "", "User ID (required)")
	scheduleCmd.Flags().StringVarP(&expertID, "expert", "x", "", "Expert ID (required)")
	scheduleCmd.Flags().StringVarP(&date, "date", "d", "", "Date YYYY-MM-DD (required)")
	scheduleCmd.Flags().StringVarP(&timeOfDay, "time", "c", "", "Time HH:MM (required)")
	scheduleCmd.Flags().StringVarP(&topic, "topic", "o", "", "Topic (required)")
	scheduleCmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	_ = scheduleCmd.MarkFlagRequired("user")
	_ = scheduleCmd.MarkFlagRequired("expert")
	_ = scheduleCmd.MarkFlagRequired("date")
	_ = scheduleCmd.MarkFlagRequired("time")
	_ = scheduleCmd.MarkFlagRequired("topic")
	meetingsCmd.AddCommand(scheduleCmd)

	// reschedule
	var actorID, newDate, newTime, reason string
	rescheduleCmd := &cobra.Command{
		Use:   "reschedule MEETING_ID",
		Short: "Move a meeting to a new slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"actorId": actorID,
				"date":    newDate,
				"time":    newTime,
				"reason":  reason,
			}
			data, err := doPutJSON(fmt.Sprintf("%s/api/meetings/%s", apiFlag, args[0]), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rescheduleCmd.Flags().StringVarP(&actorID, "actor", "u", "", "Initiating participant ID (required)")
	rescheduleCmd.Flags().StringVarP(&newDate, "date", "d", "", "New date YYYY-MM-DD (required)")
	rescheduleCmd.Flags().StringVarP(&newTime, "time", "c", "", "New time HH:MM (required)")
	rescheduleCmd.Flags().StringVarP(&reason, "reason", "r", "", "Reason (required)")
	_ = rescheduleCmd.MarkFlagRequired("actor")
	_ = rescheduleCmd.MarkFlagRequired("date")
	_ = rescheduleCmd.MarkFlagRequired("time")
	_ = rescheduleCmd.MarkFlagRequired("reason")
	meetingsCmd.AddCommand(rescheduleCmd)

	// cancel
	cancelCmd := &cobra.Command{
		Use:   "cancel MEETING_ID",
		Short: "Cancel a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDelete(fmt.Sprintf("%s/api/meetings/%s", apiFlag, args[0]))
		},
	}
	meetingsCmd.AddCommand(cancelCmd)

	// list
	var filter string
	listCmd := &cobra.Command{
		Use:   "list USER_ID",
		Short: "List a participant's meetings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/users/%s/meetings?filter=%s", apiFlag, args[0], filter))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&filter, "filter", "f", "upcoming", "upcoming or past")
	meetingsCmd.AddCommand(listCmd)

	rootCmd.AddCommand(meetingsCmd)
}
