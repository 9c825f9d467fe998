// Package ics turns iCalendar VEVENTs into day events, expanding recurrences
// inside a bounded range.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/event"
)

// Item is what an imported occurrence carries.
type Item struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	AllDay      bool
}

// Importer decodes iCalendar streams.
type Importer struct {
	Calendar calendar.Calendar
	// From and Until bound recurrence expansion, From inclusive.
	From  time.Time
	Until time.Time
	Log   *logrus.Entry
}

// NewImporter expands recurrences from months before to months after the
// month containing around.
func NewImporter(cal calendar.Calendar, around time.Time, months int) (*Importer, error) {
	m, err := calendar.BuildMonthFor(around, cal)
	if err != nil {
		return nil, err
	}
	from, err := cal.AddMonths(m.Anchor, -months)
	if err != nil {
		return nil, err
	}
	until, err := cal.AddMonths(m.Anchor, months+1)
	if err != nil {
		return nil, err
	}
	return &Importer{
		Calendar: cal,
		From:     from,
		Until:    until,
		Log:      logrus.WithField("component", "ics"),
	}, nil
}

// Decode reads every VCALENDAR in r and returns one event per occurrence.
// Events that cannot be read are skipped and logged; a malformed stream is
// an error.
func (im *Importer) Decode(r io.Reader) ([]event.Event[Item], error) {
	log := im.Log
	if log == nil {
		log = logrus.WithField("component", "ics")
	}
	var out []event.Event[Item]
	dec := ical.NewDecoder(r)
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ics: decode: %w", err)
		}
		for _, ev := range cal.Events() {
			items, err := im.occurrences(ev)
			if err != nil {
				uid, _ := ev.Props.Text(ical.PropUID)
				log.WithField("uid", uid).Warnf("skipping event: %v", err)
				continue
			}
			for _, item := range items {
				e, err := event.New(item.Start, item, im.Calendar)
				if err != nil {
					return nil, err
				}
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (im *Importer) occurrences(ev ical.Event) ([]Item, error) {
	loc := im.Calendar.Location()
	start, err := ev.DateTimeStart(loc)
	if err != nil {
		return nil, fmt.Errorf("read DTSTART: %w", err)
	}

	allDay := false
	if prop := ev.Props.Get(ical.PropDateTimeStart); prop != nil && prop.ValueType() == ical.ValueDate {
		allDay = true
		// A DATE names a day, not an instant; the calendar builds its start.
		d, err := time.Parse("20060102", prop.Value)
		if err != nil {
			return nil, fmt.Errorf("read DTSTART: %w", err)
		}
		if start, err = im.Calendar.Date(d.Year(), int(d.Month()), d.Day()); err != nil {
			return nil, err
		}
	}

	base := Item{Start: start, AllDay: allDay}
	base.UID, _ = ev.Props.Text(ical.PropUID)
	base.Summary, _ = ev.Props.Text(ical.PropSummary)
	base.Description, _ = ev.Props.Text(ical.PropDescription)
	base.Location, _ = ev.Props.Text(ical.PropLocation)

	rule := ev.Props.Get(ical.PropRecurrenceRule)
	if rule == nil || rule.Value == "" {
		return []Item{base}, nil
	}

	set, err := im.recurrence(start, rule.Value, ev.Props[ical.PropExceptionDates])
	if err != nil {
		return nil, err
	}
	dates := set.Between(im.From, im.Until, true)
	items := make([]Item, 0, len(dates))
	for _, d := range dates {
		item := base
		item.Start = d.In(loc)
		items = append(items, item)
	}
	return items, nil
}

// recurrence builds the rule set in the start's own location so daily rules
// keep their wall-clock time across DST changes.
func (im *Importer) recurrence(start time.Time, value string, exdates []ical.Prop) (*rrule.Set, error) {
	opt, err := rrule.StrToROption(value)
	if err != nil {
		return nil, fmt.Errorf("parse RRULE %q: %w", value, err)
	}
	opt.Dtstart = start
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("build RRULE %q: %w", value, err)
	}
	set := &rrule.Set{}
	set.RRule(r)
	for _, prop := range exdates {
		for _, raw := range strings.Split(prop.Value, ",") {
			ex, err := parseICalTime(strings.TrimSpace(raw), prop.Params.Get(ical.ParamTimezoneID), start.Location())
			if err != nil {
				return nil, fmt.Errorf("parse EXDATE %q: %w", raw, err)
			}
			set.ExDate(ex)
		}
	}
	return set, nil
}

func parseICalTime(value, tzid string, fallback *time.Location) (time.Time, error) {
	loc := fallback
	if tzid != "" {
		if l, err := time.LoadLocation(tzid); err == nil {
			loc = l
		}
	}
	switch {
	case strings.HasSuffix(value, "Z"):
		return time.Parse("20060102T150405Z", value)
	case len(value) == len("20060102"):
		return time.ParseInLocation("20060102", value, loc)
	default:
		return time.ParseInLocation("20060102T150405", value, loc)
	}
}
