package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/commands/options"
	"tableflip.dev/calendarlist/pkg/runner/add"
	"tableflip.dev/calendarlist/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to a day.",
		Example: `
calendarlist add call mom
calendarlist add dentist --on=03/15/2024
calendarlist add offsite --on=31.12.2024 --format=dd.MM.yyyy --calendar=work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			n := add.Add{
				Service:  svc,
				Calendar: co.Calendar,
				Title:    strings.Join(args, " "),
				On:       on.On,
				Pattern:  on.Format,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddCalendarArgs(cmd, co, store.DefaultCalendar)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	registerCalendarCompletion(cmd)

	topLevel.AddCommand(cmd)
}
