package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/commands/options"
	"tableflip.dev/calendarlist/pkg/runner/events"
)

func addEvents(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "events [YYYY-MM]",
		Aliases: []string{"get", "ls"},
		Short:   "List the events of a day or a month.",
		Example: `
calendarlist events
calendarlist events --on=today
calendarlist events 2024-03 --calendar=work
calendarlist events --list
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			n := events.Events{
				Service:       svc,
				Calendar:      co.Calendar,
				On:            on.On,
				Pattern:       on.Format,
				ListCalendars: co.List,
				ShowID:        io.ShowID,
				JSON:          oo.JSON,
			}
			if len(args) == 1 {
				n.Month = args[0]
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co, "")
	options.AddListCalendarsArg(cmd, co)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	registerCalendarCompletion(cmd)

	topLevel.AddCommand(cmd)
}
