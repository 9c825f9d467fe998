package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/event"
	"tableflip.dev/calendarlist/pkg/store"
)

// DaySource reports days that carry events.
type DaySource interface {
	HasEvents(date time.Time) bool
}

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a compact month grid. Days with events are bold and today is
// underlined.
func (pp *PrettyPrint) Month(m calendar.Month, events DaySource, today time.Time) error {
	cal := m.Calendar()
	if cal == nil {
		return nil
	}
	symbols, err := calendar.LocalizedWeekdaySymbols(cal)
	if err != nil {
		return err
	}
	w := pp.out()

	tf := color.New(color.FgWhite, color.Italic)
	title := m.Title()
	mid := (width - len([]rune(title))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), title)

	hdr := color.New(color.Faint)
	wkd := color.New(color.Faint, color.FgRed)
	for i, s := range symbols {
		p := hdr
		if s.IsWeekend {
			p = wkd
		}
		sep := " "
		if i == len(symbols)-1 {
			sep = "\n"
		}
		_, _ = p.Fprintf(w, "%2s%s", s.Symbol, sep)
	}

	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", m.LeadingBlanks()))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	for _, week := range m.Weeks {
		for i, d := range week {
			p := l1
			if events != nil && events.HasEvents(d) {
				p = l2
			}
			if !today.IsZero() && calendar.IsSameDay(d, today, cal) {
				p = color.New(color.Bold, color.Underline)
			}
			_, _ = p.Fprintf(w, "%2d", cal.Components(d).Day)
			if i < len(week)-1 {
				_, _ = fmt.Fprint(w, " ")
			}
		}
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
	return nil
}

// Year prints each month in turn.
func (pp *PrettyPrint) Year(months []calendar.Month, events DaySource, today time.Time) error {
	for _, m := range months {
		if err := pp.Month(m, events, today); err != nil {
			return err
		}
	}
	return nil
}

// MonthLong prints every day of m on its own line followed by that day's
// events.
func (pp *PrettyPrint) MonthLong(m calendar.Month, idx *event.Index[store.Record], today time.Time) error {
	cal := m.Calendar()
	if cal == nil {
		return nil
	}
	symbols := cal.WeekdaySymbols()
	w := pp.out()

	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)
	f := color.New(color.Faint)

	pp.Title(m.Title())
	for _, d := range m.Days() {
		c := cal.Components(d)
		isToday := !today.IsZero() && calendar.IsSameDay(d, today, cal)
		printer := p
		if isToday {
			printer = b
		}
		if c.Weekday == cal.FirstWeekday() {
			printer = s
			if isToday {
				printer = bs
			}
		}
		symbol := ""
		if c.Weekday >= 1 && c.Weekday <= len(symbols) {
			symbol = symbols[c.Weekday-1]
		}
		_, _ = printer.Fprintf(w, "%2d %-2s", c.Day, symbol)

		events := idx.EventsOn(d)
		if len(events) == 0 {
			_, _ = fmt.Fprintln(w, "")
			continue
		}
		for i, e := range events {
			if i > 0 {
				_, _ = fmt.Fprint(w, "     ")
			}
			_, _ = p.Fprintf(w, "  %s", e.Data.Title)
			if e.Data.Calendar != "" {
				_, _ = f.Fprintf(w, " (%s)", e.Data.Calendar)
			}
			_, _ = fmt.Fprintln(w, "")
		}
	}
	pp.NewLine()
	return nil
}

// Weekdays prints the weekday columns in display order.
func (pp *PrettyPrint) Weekdays(symbols []calendar.WeekdaySymbol) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Column"), bold.Sprint("Symbol"), bold.Sprint("Weekend"))
	for i, s := range symbols {
		weekend := ""
		if s.IsWeekend {
			weekend = red.Sprint("yes")
		}
		tbl.AddRow(i+1, s.Symbol, weekend)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
