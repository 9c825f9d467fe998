// Package calendar builds week-partitioned month layouts against an injected
// calendar abstraction.
package calendar

import (
	"time"

	"golang.org/x/text/language"
)

// Calendar is the date arithmetic and symbol provider every layout operation
// runs against. Weekdays are 1-based with 1 being Sunday, months are 1-based.
type Calendar interface {
	// FirstWeekday is the weekday (1..7) a week row starts on.
	FirstWeekday() int
	// WeekdaySymbols are display symbols in canonical order, index 0 = Sunday.
	WeekdaySymbols() []string
	// MonthSymbols are month names, index 0 = first month of the year.
	MonthSymbols() []string
	// Language is used for casing month names.
	Language() language.Tag
	Location() *time.Location

	// Date constructs the first instant of year/month/day, midnight unless
	// the zone skips it, and fails when the combination does not exist.
	Date(year, month, day int) (time.Time, error)
	DaysInMonth(year, month int) (int, error)
	MonthsInYear(year int) int
	AddMonths(t time.Time, months int) (time.Time, error)
	Components(t time.Time) Components
	// StartOfDay returns the first instant of the day t falls on.
	StartOfDay(t time.Time) (time.Time, error)
	// CompareDay compares a and b at day granularity.
	CompareDay(a, b time.Time) int
	// IsWeekend reports whether t is styled as a weekend day.
	IsWeekend(t time.Time) bool
}

// Components is the calendar breakdown of an instant.
type Components struct {
	Year    int
	Month   int
	Day     int
	Weekday int
}
