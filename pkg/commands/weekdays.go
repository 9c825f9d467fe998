package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/commands/options"
	"tableflip.dev/calendarlist/pkg/runner/weekdays"
	"tableflip.dev/calendarlist/pkg/store"
)

func addWeekdays(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "weekdays",
		Short: "Show the weekday columns for the configured locale and first weekday.",
		Example: `
calendarlist weekdays
calendarlist weekdays --locale=ar-SA
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			cal, err := cfg.Settings().Calendar()
			if err != nil {
				return oo.HandleError(err)
			}
			k := weekdays.Weekdays{Calendar: cal, JSON: oo.JSON}
			return oo.HandleError(k.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
