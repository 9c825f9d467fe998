package calendar

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Month is one laid-out month. It is a value: navigation builds new months.
type Month struct {
	Year  int
	Month int
	// Anchor is the first day of the month.
	Anchor time.Time
	// Weeks are rows of normalized days in ascending order.
	Weeks [][]time.Time

	cal Calendar
}

// Key identifies the month as "{year}-{month}".
func (m Month) Key() string {
	return fmt.Sprintf("%d-%d", m.Year, m.Month)
}

// Calendar returns the calendar the month was built with.
func (m Month) Calendar() Calendar { return m.cal }

// Next builds the following month.
func (m Month) Next() (Month, error) {
	return m.offset(1)
}

// Previous builds the preceding month.
func (m Month) Previous() (Month, error) {
	return m.offset(-1)
}

func (m Month) offset(months int) (Month, error) {
	if m.cal == nil {
		return Month{}, fmt.Errorf("calendar: month %s has no calendar", m.Key())
	}
	date, err := m.cal.AddMonths(m.Anchor, months)
	if err != nil {
		return Month{}, err
	}
	return BuildMonthFor(date, m.cal)
}

// Surrounding returns previous, m, next.
func (m Month) Surrounding() ([3]Month, error) {
	prev, err := m.Previous()
	if err != nil {
		return [3]Month{}, err
	}
	next, err := m.Next()
	if err != nil {
		return [3]Month{}, err
	}
	return [3]Month{prev, m, next}, nil
}

// Name is the calendar's month symbol with its first letter upper-cased.
func (m Month) Name() string {
	if m.cal == nil {
		return strconv.Itoa(m.Month)
	}
	symbols := m.cal.MonthSymbols()
	if m.Month < 1 || m.Month > len(symbols) {
		return strconv.Itoa(m.Month)
	}
	name := symbols[m.Month-1]
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return cases.Upper(m.cal.Language()).String(name[:size]) + name[size:]
}

// Title is "{Name} {Year}".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Name(), m.Year)
}

// Days returns every day of the month in order.
func (m Month) Days() []time.Time {
	var days []time.Time
	for _, w := range m.Weeks {
		days = append(days, w...)
	}
	return days
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	if m.cal == nil {
		return false
	}
	c := m.cal.Components(t)
	return c.Year == m.Year && c.Month == m.Month
}

// LeadingBlanks is the number of empty cells before the first day.
func (m Month) LeadingBlanks() int {
	if len(m.Weeks) == 0 {
		return 0
	}
	return max(0, 7-len(m.Weeks[0]))
}

// TrailingBlanks is the number of empty cells after the last day.
func (m Month) TrailingBlanks() int {
	if len(m.Weeks) < 2 {
		return 0
	}
	return max(0, 7-len(m.Weeks[len(m.Weeks)-1]))
}
