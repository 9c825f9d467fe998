package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/runner/info"
	"tableflip.dev/calendarlist/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about settings, calendars and where they are stored.",
		Example: `
calendarlist info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
