// Package info provides the runner that reports configuration and storage.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calendarlist/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("CALENDARLIST_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "CALENDARLIST_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "CALENDARLIST_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	s := n.Config.Settings()

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("path"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("locale"), s.Locale)
	tbl.AddRow(bold.Sprint("first weekday"), s.FirstWeekday)
	tbl.AddRow(bold.Sprint("timezone"), s.Timezone)
	tbl.AddRow(bold.Sprint("date format"), s.Pattern())
	tbl.AddRow(bold.Sprint("log level"), s.LogLevel)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	_, _ = fmt.Fprintln(out, "Calendars:")
	found := 0
	for _, k := range n.Persistence.Calendars(ctx) {
		_, _ = fmt.Fprintf(out, "  %s (%d events)\n", k, len(n.Persistence.List(ctx, k)))
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no calendars")
	}
	return nil
}
