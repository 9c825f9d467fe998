package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/commands/options"
	"tableflip.dev/calendarlist/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print a month calendar.",
		Example: `
calendarlist month
calendarlist month 2024-02 --first-weekday=2
calendarlist month 2024-08 --locale=fr --long
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			m := month.Month{
				Service:  svc,
				Calendar: co.Calendar,
				Long:     mo.Long,
				JSON:     oo.JSON,
			}
			if len(args) == 1 {
				if m.Year, m.Month, err = month.ParseYearMonth(args[0]); err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(m.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co, "")
	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	registerCalendarCompletion(cmd)

	topLevel.AddCommand(cmd)
}
