package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/commands/options"
	"tableflip.dev/calendarlist/pkg/runner/year"
)

func addYear(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "year [YYYY]",
		Short: "Print every month of a year.",
		Example: `
calendarlist year
calendarlist year 2024 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			y := year.Year{
				Service:  svc,
				Calendar: co.Calendar,
				JSON:     oo.JSON,
			}
			if len(args) == 1 {
				if y.Year, err = strconv.Atoi(args[0]); err != nil || y.Year <= 0 {
					return oo.HandleError(fmt.Errorf("invalid year %q", args[0]))
				}
			}
			return oo.HandleError(y.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co, "")
	options.AddOutputArg(cmd, oo)
	registerCalendarCompletion(cmd)

	topLevel.AddCommand(cmd)
}
