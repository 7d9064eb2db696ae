// Meeting commands for the logbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scobrodev/logbook/pkg/types"
)

var (
	meetingTitle       string
	meetingDescription string
	meetingStart       string
	meetingEnd         string
	meetingLocation    string
	meetingType        string

	attendeeName  string
	attendeeEmail string
	attendeeRole  string

	actionTitle       string
	actionDescription string
	actionAssignee    string
	actionDue         string
	actionPriority    string
)

var meetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage meetings",
}

var meetingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new meeting",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		resp, err := service.CreateMeeting(types.CreateMeetingRequest{
			Title:       meetingTitle,
			Description: strPtr(meetingDescription),
			StartTime:   strPtr(meetingStart),
			EndTime:     strPtr(meetingEnd),
			Location:    strPtr(meetingLocation),
			MeetingType: strPtr(meetingType),
		})
		if err != nil {
			return fmt.Errorf("create meeting: %w", err)
		}

		if flagJSON {
			return printJSON(resp)
		}
		fmt.Printf("Created meeting: %s\n", resp.ID)
		return nil
	},
}

var meetingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all meetings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		meetings, err := service.GetAllMeetings()
		if err != nil {
			return fmt.Errorf("list meetings: %w", err)
		}

		if flagJSON {
			return printJSON(meetings)
		}
		for _, m := range meetings {
			fmt.Printf("%s  [%s/%s]  %s\n", m.ID, m.MeetingType, m.Status, m.Title)
		}
		return nil
	},
}

var meetingDeleteCmd = &cobra.Command{
	Use:   "delete <meeting-id>",
	Short: "Delete a meeting with its attendees and actions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := service.DeleteMeeting(args[0]); err != nil {
			return fmt.Errorf("delete meeting: %w", err)
		}
		fmt.Printf("Deleted meeting: %s\n", args[0])
		return nil
	},
}

var attendeeCmd = &cobra.Command{
	Use:   "attendee",
	Short: "Manage meeting attendees",
}

var attendeeAddCmd = &cobra.Command{
	Use:   "add <meeting-id>",
	Short: "Add an attendee to a meeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		resp, err := service.AddMeetingAttendee(types.AddAttendeeRequest{
			MeetingID: args[0],
			Name:      attendeeName,
			Email:     strPtr(attendeeEmail),
			Role:      strPtr(attendeeRole),
		})
		if err != nil {
			return fmt.Errorf("add attendee: %w", err)
		}

		if flagJSON {
			return printJSON(resp)
		}
		fmt.Printf("Added attendee: %s\n", resp.ID)
		return nil
	},
}

var attendeeListCmd = &cobra.Command{
	Use:   "list <meeting-id>",
	Short: "List a meeting's attendees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		attendees, err := service.GetMeetingAttendees(args[0])
		if err != nil {
			return fmt.Errorf("list attendees: %w", err)
		}

		if flagJSON {
			return printJSON(attendees)
		}
		for _, a := range attendees {
			fmt.Printf("%s  %s  (%s, %s)\n", a.ID, a.Name, a.Role, a.Status)
		}
		return nil
	},
}

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Manage meeting actions",
}

var actionAddCmd = &cobra.Command{
	Use:   "add <meeting-id>",
	Short: "Record an action item on a meeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		resp, err := service.CreateMeetingAction(types.CreateActionRequest{
			MeetingID:   args[0],
			Title:       actionTitle,
			Description: strPtr(actionDescription),
			Assignee:    strPtr(actionAssignee),
			DueDate:     strPtr(actionDue),
			Priority:    strPtr(actionPriority),
		})
		if err != nil {
			return fmt.Errorf("create action: %w", err)
		}

		if flagJSON {
			return printJSON(resp)
		}
		fmt.Printf("Created action: %s\n", resp.ID)
		return nil
	},
}

var actionListCmd = &cobra.Command{
	Use:   "list <meeting-id>",
	Short: "List a meeting's actions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		actions, err := service.GetMeetingActions(args[0])
		if err != nil {
			return fmt.Errorf("list actions: %w", err)
		}

		if flagJSON {
			return printJSON(actions)
		}
		for _, a := range actions {
			fmt.Printf("%s  [%s/%s]  %s\n", a.ID, a.Priority, a.Status, a.Title)
		}
		return nil
	},
}

func init() {
	meetingAddCmd.Flags().StringVar(&meetingTitle, "title", "", "meeting title (required)")
	meetingAddCmd.Flags().StringVar(&meetingDescription, "description", "", "meeting description")
	meetingAddCmd.Flags().StringVar(&meetingStart, "start", "", "start time, RFC 3339")
	meetingAddCmd.Flags().StringVar(&meetingEnd, "end", "", "end time, RFC 3339")
	meetingAddCmd.Flags().StringVar(&meetingLocation, "location", "", "meeting location")
	meetingAddCmd.Flags().StringVar(&meetingType, "type", "", "meeting type (default: meeting)")
	_ = meetingAddCmd.MarkFlagRequired("title")

	attendeeAddCmd.Flags().StringVar(&attendeeName, "name", "", "attendee name (required)")
	attendeeAddCmd.Flags().StringVar(&attendeeEmail, "email", "", "attendee email")
	attendeeAddCmd.Flags().StringVar(&attendeeRole, "role", "", "attendee role (default: attendee)")
	_ = attendeeAddCmd.MarkFlagRequired("name")

	actionAddCmd.Flags().StringVar(&actionTitle, "title", "", "action title (required)")
	actionAddCmd.Flags().StringVar(&actionDescription, "description", "", "action description")
	actionAddCmd.Flags().StringVar(&actionAssignee, "assignee", "", "assignee name")
	actionAddCmd.Flags().StringVar(&actionDue, "due", "", "due date, RFC 3339")
	actionAddCmd.Flags().StringVar(&actionPriority, "priority", "", "priority (default: medium)")
	_ = actionAddCmd.MarkFlagRequired("title")

	attendeeCmd.AddCommand(attendeeAddCmd)
	attendeeCmd.AddCommand(attendeeListCmd)
	actionCmd.AddCommand(actionAddCmd)
	actionCmd.AddCommand(actionListCmd)

	meetingCmd.AddCommand(meetingAddCmd)
	meetingCmd.AddCommand(meetingListCmd)
	meetingCmd.AddCommand(meetingDeleteCmd)
	meetingCmd.AddCommand(attendeeCmd)
	meetingCmd.AddCommand(actionCmd)
}
