// Package add provides the runner that stores a new event.
package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/printers"
	"tableflip.dev/calendarlist/pkg/store"
)

// Add stores Title on the day On, read with Pattern. An empty On means
// today.
type Add struct {
	Service  *app.Service
	Calendar string
	Title    string
	On       string
	Pattern  string
	ShowID   bool
	JSON     bool
	Out      io.Writer
	Now      time.Time
}

// Do adds the event and prints the events of its day.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	on := n.On
	if on == "" {
		on = "today"
	}
	day, err := n.Service.ParseDay(on, n.Pattern, now)
	if err != nil {
		return err
	}
	r, err := n.Service.Add(ctx, n.Calendar, day, n.Title)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, r)
	}

	idx, err := n.Service.Index(ctx, r.Calendar)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.NewLine()
	events := idx.EventsOn(day)
	pp.TitleWithCount(day.Format("Monday, January 2, 2006"), len(events))
	records := make([]store.Record, 0, len(events))
	for _, e := range events {
		records = append(records, e.Data)
	}
	pp.Records(records...)
	return nil
}
