package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/commands/options"
	teaui "tableflip.dev/calendarlist/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
calendarlist ui
calendarlist ui --calendar=work --first-weekday=2
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := loadService()
			if err != nil {
				return err
			}
			return teaui.Run(svc, co.Calendar)
		},
	}

	options.AddCalendarArgs(cmd, co, "")
	registerCalendarCompletion(cmd)

	topLevel.AddCommand(cmd)
}
