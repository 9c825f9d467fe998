package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/calendarlist/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(calendarlist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(calendarlist completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerCalendarCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("calendar", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return calendarCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func calendarCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	var out []string
	for _, c := range p.Calendars(context.Background()) {
		if strings.HasPrefix(c, toComplete) {
			out = append(out, c)
		}
	}
	return out
}
