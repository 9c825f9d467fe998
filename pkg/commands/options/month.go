package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions
type MonthOptions struct {
	Long bool
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().BoolVarP(&o.Long, "long", "l", false,
		"List every day with its events instead of a grid.")
}
