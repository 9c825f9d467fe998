// Package event indexes caller-supplied events by normalized day.
package event

import (
	"fmt"
	"time"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/timeutil"
)

// Event attaches data to a day. Date is always normalized.
type Event[T any] struct {
	Date time.Time
	Data T
}

// ParseError reports an event date string that does not match its pattern.
type ParseError struct {
	Value   string
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("event: parse %q with pattern %q: %v", e.Value, e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// New creates an event on the day of date.
func New[T any](date time.Time, data T, cal calendar.Calendar) (Event[T], error) {
	day, err := calendar.Normalize(date, cal)
	if err != nil {
		return Event[T]{}, err
	}
	return Event[T]{Date: day, Data: data}, nil
}

// Parse creates an event from a formatted date. An empty pattern means
// timeutil.DefaultPattern ("MM/dd/yyyy"). Only the year, month and day of the
// parsed value are kept.
func Parse[T any](value, pattern string, data T, cal calendar.Calendar) (Event[T], error) {
	if pattern == "" {
		pattern = timeutil.DefaultPattern
	}
	layout, err := timeutil.Layout(pattern)
	if err != nil {
		return Event[T]{}, &ParseError{Value: value, Pattern: pattern, Err: err}
	}
	// Parsed in UTC so the written day survives zones that skip midnight.
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return Event[T]{}, &ParseError{Value: value, Pattern: pattern, Err: err}
	}
	day, err := cal.Date(parsed.Year(), int(parsed.Month()), parsed.Day())
	if err != nil {
		return Event[T]{}, err
	}
	return Event[T]{Date: day, Data: data}, nil
}
