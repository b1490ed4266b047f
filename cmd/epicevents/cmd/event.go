// ABOUTME: Event management commands
// ABOUTME: Dates use the "2006-01-02 15:04" layout; support assignment is management-only

package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/service"
)

const eventDateLayout = "2006-01-02 15:04"

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
}

var eventCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event for a signed contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		contractID, _ := cmd.Flags().GetInt64("contract-id")
		supportID, _ := cmd.Flags().GetInt64("support-id")
		name, _ := cmd.Flags().GetString("name")
		startStr, _ := cmd.Flags().GetString("start-date")
		endStr, _ := cmd.Flags().GetString("end-date")
		location, _ := cmd.Flags().GetString("location")
		attendees, _ := cmd.Flags().GetInt("attendees")
		notes, _ := cmd.Flags().GetString("notes")

		start, err := parseEventDate(startStr)
		if err != nil {
			return err
		}
		end, err := parseEventDate(endStr)
		if err != nil {
			return err
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		event, err := app.events.Create(cmd.Context(), service.CreateEventInput{
			ContractID: contractID,
			SupportID:  supportID,
			Name:       name,
			StartDate:  start,
			EndDate:    end,
			Location:   location,
			Attendees:  attendees,
			Notes:      notes,
		})
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully created event: %s (id %d)\n", event.Name, event.ID)
		return nil
	},
}

var eventUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing event",
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, _ := cmd.Flags().GetInt64("event-id")
		name, _ := cmd.Flags().GetString("name")
		startStr, _ := cmd.Flags().GetString("start-date")
		endStr, _ := cmd.Flags().GetString("end-date")
		location, _ := cmd.Flags().GetString("location")
		attendees, _ := cmd.Flags().GetInt("attendees")
		notes, _ := cmd.Flags().GetString("notes")

		var input service.UpdateEventInput
		input.Name = name
		input.Location = location
		input.Attendees = attendees
		input.Notes = notes

		var err error
		if startStr != "" {
			input.StartDate, err = parseEventDate(startStr)
			if err != nil {
				return err
			}
		}
		if endStr != "" {
			input.EndDate, err = parseEventDate(endStr)
			if err != nil {
				return err
			}
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		event, err := app.events.Update(cmd.Context(), eventID, input)
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully updated event: %s\n", event.Name)
		return nil
	},
}

var eventAssignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a support employee to an event",
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, _ := cmd.Flags().GetInt64("event-id")
		supportID, _ := cmd.Flags().GetInt64("support-id")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		event, err := app.events.AssignSupport(cmd.Context(), eventID, supportID)
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Assigned support %d to event %s\n", event.SupportID, event.Name)
		return nil
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	RunE: func(cmd *cobra.Command, args []string) error {
		noSupport, _ := cmd.Flags().GetBool("no-support")
		mine, _ := cmd.Flags().GetBool("mine")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		events, err := app.events.List(cmd.Context(), service.ListEventsOptions{
			NoSupport: noSupport,
			Mine:      mine,
		})
		if err != nil {
			return renderErr(err)
		}

		for _, e := range events {
			support := "unassigned"
			if e.SupportID != 0 {
				support = fmt.Sprintf("support:%d", e.SupportID)
			}
			cmd.Printf("%d\t%s\tcontract:%d\t%s\t%s -> %s\t%s\n",
				e.ID, e.Name, e.ContractID, support,
				e.StartDate.Format(eventDateLayout), e.EndDate.Format(eventDateLayout), e.Location)
		}
		return nil
	},
}

func parseEventDate(s string) (time.Time, error) {
	t, err := time.Parse(eventDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use the format YYYY-MM-DD HH:MM", s)
	}
	return t, nil
}

func init() {
	eventCreateCmd.Flags().Int64("contract-id", 0, "Contract ID")
	eventCreateCmd.Flags().Int64("support-id", 0, "Support employee ID (optional)")
	eventCreateCmd.Flags().String("name", "", "Event name")
	eventCreateCmd.Flags().String("start-date", "", "Event start date (YYYY-MM-DD HH:MM)")
	eventCreateCmd.Flags().String("end-date", "", "Event end date (YYYY-MM-DD HH:MM)")
	eventCreateCmd.Flags().String("location", "", "Event location")
	eventCreateCmd.Flags().Int("attendees", 0, "Number of attendees")
	eventCreateCmd.Flags().String("notes", "", "Event notes")
	_ = eventCreateCmd.MarkFlagRequired("contract-id")
	_ = eventCreateCmd.MarkFlagRequired("name")
	_ = eventCreateCmd.MarkFlagRequired("start-date")
	_ = eventCreateCmd.MarkFlagRequired("end-date")

	eventUpdateCmd.Flags().Int64("event-id", 0, "ID of the event to update")
	eventUpdateCmd.Flags().String("name", "", "New event name")
	eventUpdateCmd.Flags().String("start-date", "", "New start date (YYYY-MM-DD HH:MM)")
	eventUpdateCmd.Flags().String("end-date", "", "New end date (YYYY-MM-DD HH:MM)")
	eventUpdateCmd.Flags().String("location", "", "New location")
	eventUpdateCmd.Flags().Int("attendees", 0, "New number of attendees")
	eventUpdateCmd.Flags().String("notes", "", "New notes")
	_ = eventUpdateCmd.MarkFlagRequired("event-id")

	eventAssignCmd.Flags().Int64("event-id", 0, "Event ID")
	eventAssignCmd.Flags().Int64("support-id", 0, "Support employee ID")
	_ = eventAssignCmd.MarkFlagRequired("event-id")
	_ = eventAssignCmd.MarkFlagRequired("support-id")

	eventListCmd.Flags().Bool("no-support", false, "Only events without an assigned support employee")
	eventListCmd.Flags().Bool("mine", false, "Only events assigned to me")

	eventCmd.AddCommand(eventCreateCmd)
	eventCmd.AddCommand(eventUpdateCmd)
	eventCmd.AddCommand(eventAssignCmd)
	eventCmd.AddCommand(eventListCmd)
	rootCmd.AddCommand(eventCmd)
}
