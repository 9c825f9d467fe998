package options

import (
	"github.com/spf13/cobra"
)

// ImportOptions
type ImportOptions struct {
	Months int
}

func AddImportArgs(cmd *cobra.Command, o *ImportOptions, def int) {
	cmd.Flags().IntVar(&o.Months, "months", def,
		"Expand recurring events this many months before and after today.")
}
