package options

import (
	"github.com/spf13/cobra"
)

// OnOptions select a day.
type OnOptions struct {
	On     string
	Format string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		`Specify a date in the configured date format, example: --on="02/28/2024" or --on=today.`)
	cmd.Flags().StringVar(&o.Format, "format", "",
		`Date pattern for --on, example: --format="yyyy-MM-dd". Defaults to the date_format setting.`)
}
