// Package icsimport provides the runner that imports an iCalendar file.
package icsimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/ics"
	"tableflip.dev/calendarlist/pkg/printers"
)

// DefaultMonths is how far around Now recurrences are expanded.
const DefaultMonths = 12

// Import reads File (or In when set) into Calendar.
type Import struct {
	Service  *app.Service
	Calendar string
	File     string
	In       io.Reader
	// Months bounds recurrence expansion on both sides of Now.
	Months int
	JSON   bool
	Out    io.Writer
	Now    time.Time
}

// Do imports the file and reports what was stored.
func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Calendar == nil {
		return errors.New("can not import, no service")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	months := n.Months
	if months <= 0 {
		months = DefaultMonths
	}

	in := n.In
	if in == nil {
		path, err := homedir.Expand(n.File)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", n.File, err)
		}
		defer f.Close()
		in = f
	}

	im, err := ics.NewImporter(n.Service.Calendar, now, months)
	if err != nil {
		return err
	}
	res, err := n.Service.Import(ctx, n.Calendar, in, im)
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, res)
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	g := color.New(color.FgGreen)
	f := color.New(color.Faint)
	_, _ = g.Fprintf(out, "imported %d events into %s", res.Added, res.Calendar)
	if res.Skipped > 0 {
		_, _ = f.Fprintf(out, " (%d already present)", res.Skipped)
	}
	_, _ = fmt.Fprintln(out, "")
	return nil
}
