// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CalendarOptions captures the calendar a command reads or writes.
type CalendarOptions struct {
	Calendar string
	List     bool
}

// AddCalendarArgs registers --calendar with the given default. An empty
// default means every calendar.
func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions, def string) {
	usage := "Limit to one calendar."
	if def != "" {
		usage = "Specify the calendar."
	}
	cmd.Flags().StringVarP(&o.Calendar, "calendar", "c", def, usage)
}

// AddListCalendarsArg registers --list.
func AddListCalendarsArg(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().BoolVar(&o.List, "list", false,
		"List all calendars.")
}
