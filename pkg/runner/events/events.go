// Package events provides the runner that lists stored events.
package events

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/printers"
	"tableflip.dev/calendarlist/pkg/runner/month"
)

const dayTitle = "Monday, January 2, 2006"

// Events lists the events of one day when On is set, otherwise the agenda of
// Month ("YYYY-MM", default the month containing Now).
type Events struct {
	Service  *app.Service
	Calendar string
	On       string
	Pattern  string
	Month    string
	// ListCalendars prints calendar names instead of events.
	ListCalendars bool
	ShowID        bool
	JSON          bool
	Out           io.Writer
	Now           time.Time
}

// Do prints the events.
func (n *Events) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}

	if n.ListCalendars {
		cals, err := n.Service.Calendars(ctx)
		if err != nil {
			return err
		}
		if n.JSON {
			return printers.JSON(n.Out, cals)
		}
		pp.TitleWithCount("Calendars", len(cals))
		for _, c := range cals {
			pp.Title("  " + c)
		}
		return nil
	}

	var (
		res app.AgendaResult
		err error
	)
	switch {
	case n.On != "":
		day, perr := n.Service.ParseDay(n.On, n.Pattern, now)
		if perr != nil {
			return perr
		}
		res, err = n.Service.Agenda(ctx, n.Calendar, day, day)
	default:
		var m calendar.Month
		if n.Month != "" {
			y, mo, perr := month.ParseYearMonth(n.Month)
			if perr != nil {
				return perr
			}
			m, err = calendar.BuildMonth(y, mo, n.Service.Calendar)
		} else {
			m, err = calendar.BuildMonthFor(now, n.Service.Calendar)
		}
		if err != nil {
			return err
		}
		res, err = n.Service.MonthAgenda(ctx, n.Calendar, m)
	}
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, res)
	}
	pp.NewLine()
	if len(res.Days) == 0 {
		pp.Title(res.From.Format(dayTitle))
		pp.Records()
		return nil
	}
	for _, d := range res.Days {
		pp.TitleWithCount(d.Day.Format(dayTitle), len(d.Records))
		pp.Records(d.Records...)
	}
	return nil
}
