package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/commands/options"
	"tableflip.dev/calendarlist/pkg/runner/icsimport"
	"tableflip.dev/calendarlist/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	io := &options.ImportOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: "Import events from an iCalendar file.",
		Example: `
calendarlist import ~/Downloads/holidays.ics --calendar=holidays
calendarlist import team.ics --months=3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			n := icsimport.Import{
				Service:  svc,
				Calendar: co.Calendar,
				File:     args[0],
				Months:   io.Months,
				JSON:     oo.JSON,
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co, store.DefaultCalendar)
	options.AddImportArgs(cmd, io, icsimport.DefaultMonths)
	options.AddOutputArg(cmd, oo)
	registerCalendarCompletion(cmd)

	topLevel.AddCommand(cmd)
}
