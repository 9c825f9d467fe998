// Package year provides the runner that prints every month of a year.
package year

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/printers"
)

// Year prints the months of Year, or of the year containing Now when Year
// is zero.
type Year struct {
	Service  *app.Service
	Calendar string
	Year     int
	JSON     bool
	Out      io.Writer
	Now      time.Time
}

// Do renders the year.
func (n *Year) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Calendar == nil {
		return errors.New("can not print year, no calendar")
	}
	cal := n.Service.Calendar
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	anchor := now
	if n.Year != 0 {
		var err error
		if anchor, err = cal.Date(n.Year, 1, 1); err != nil {
			return err
		}
	}
	months, err := calendar.MonthsOfYear(anchor, cal)
	if err != nil {
		return err
	}

	idx, err := n.Service.Index(ctx, n.Calendar)
	if err != nil {
		return err
	}

	if n.JSON {
		views := make([]printers.MonthJSON, 0, len(months))
		for _, m := range months {
			v, err := printers.NewMonthJSON(m, idx)
			if err != nil {
				return err
			}
			views = append(views, v)
		}
		return printers.JSON(n.Out, views)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	return pp.Year(months, idx, now)
}
