package event

import (
	"sort"
	"time"

	"tableflip.dev/calendarlist/pkg/calendar"
)

// Index groups events by day. It is built once and read-only afterwards.
type Index[T any] struct {
	cal   calendar.Calendar
	byDay map[int64][]Event[T]
	days  []time.Time
	total int
}

// NewIndex groups events by normalized date, keeping their relative order
// within each day.
func NewIndex[T any](cal calendar.Calendar, events []Event[T]) (*Index[T], error) {
	ix := &Index[T]{
		cal:   cal,
		byDay: make(map[int64][]Event[T]),
	}
	for _, e := range events {
		day, err := calendar.Normalize(e.Date, cal)
		if err != nil {
			return nil, err
		}
		e.Date = day
		key := day.Unix()
		if _, ok := ix.byDay[key]; !ok {
			ix.days = append(ix.days, day)
		}
		ix.byDay[key] = append(ix.byDay[key], e)
		ix.total++
	}
	sort.Slice(ix.days, func(i, j int) bool { return ix.days[i].Before(ix.days[j]) })
	return ix, nil
}

func (ix *Index[T]) key(date time.Time) (int64, bool) {
	if ix == nil {
		return 0, false
	}
	day, err := calendar.Normalize(date, ix.cal)
	if err != nil {
		return 0, false
	}
	return day.Unix(), true
}

// EventsOn returns the events on date's day, or an empty slice.
func (ix *Index[T]) EventsOn(date time.Time) []Event[T] {
	key, ok := ix.key(date)
	if !ok {
		return []Event[T]{}
	}
	found := ix.byDay[key]
	out := make([]Event[T], len(found))
	copy(out, found)
	return out
}

// HasEvents reports whether date's day has any events.
func (ix *Index[T]) HasEvents(date time.Time) bool {
	key, ok := ix.key(date)
	if !ok {
		return false
	}
	return len(ix.byDay[key]) > 0
}

// Days lists every day that has events, ascending.
func (ix *Index[T]) Days() []time.Time {
	if ix == nil {
		return nil
	}
	out := make([]time.Time, len(ix.days))
	copy(out, ix.days)
	return out
}

// Len is the number of indexed events.
func (ix *Index[T]) Len() int {
	if ix == nil {
		return 0
	}
	return ix.total
}

// InMonth maps each day of m that has events to true, keyed by day of month.
func (ix *Index[T]) InMonth(m calendar.Month) map[int]bool {
	marks := make(map[int]bool)
	for i, day := range m.Days() {
		if ix.HasEvents(day) {
			marks[i+1] = true
		}
	}
	return marks
}
