package printers

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/event"
	"tableflip.dev/calendarlist/pkg/store"
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	if w == nil {
		w = color.Output
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MonthJSON is the machine readable form of a month grid. The blank counts
// are the empty cells before the first and after the last day.
type MonthJSON struct {
	Title          string                    `json:"title"`
	Year           int                       `json:"year"`
	Month          int                       `json:"month"`
	FirstWeekday   int                       `json:"firstWeekday"`
	Weekdays       []string                  `json:"weekdays"`
	Weeks          [][]string                `json:"weeks"`
	LeadingBlanks  int                       `json:"leadingBlanks"`
	TrailingBlanks int                       `json:"trailingBlanks"`
	BusyDays       []int                     `json:"busyDays,omitempty"`
	Events         map[string][]store.Record `json:"events,omitempty"`
}

// NewMonthJSON flattens m, attaching the events idx holds for its days.
// idx may be nil.
func NewMonthJSON(m calendar.Month, idx *event.Index[store.Record]) (MonthJSON, error) {
	out := MonthJSON{
		Title:          m.Title(),
		Year:           m.Year,
		Month:          m.Month,
		LeadingBlanks:  m.LeadingBlanks(),
		TrailingBlanks: m.TrailingBlanks(),
	}
	cal := m.Calendar()
	if cal == nil {
		return out, nil
	}
	out.FirstWeekday = cal.FirstWeekday()
	symbols, err := calendar.LocalizedWeekdaySymbols(cal)
	if err != nil {
		return out, err
	}
	for _, s := range symbols {
		out.Weekdays = append(out.Weekdays, s.Symbol)
	}
	for _, week := range m.Weeks {
		days := make([]string, 0, len(week))
		for _, d := range week {
			key := d.Format(time.DateOnly)
			days = append(days, key)
			events := idx.EventsOn(d)
			if len(events) == 0 {
				continue
			}
			if out.Events == nil {
				out.Events = make(map[string][]store.Record)
			}
			for _, e := range events {
				out.Events[key] = append(out.Events[key], e.Data)
			}
		}
		out.Weeks = append(out.Weeks, days)
	}
	for day := range idx.InMonth(m) {
		out.BusyDays = append(out.BusyDays, day)
	}
	sort.Ints(out.BusyDays)
	return out, nil
}
