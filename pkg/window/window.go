// Package window keeps the three-month buffer behind infinite month paging.
package window

import (
	"fmt"
	"time"

	"tableflip.dev/calendarlist/pkg/calendar"
)

// CenterIndex is the pager page of the current month.
const CenterIndex = 1

// Direction is a one-month page move.
type Direction int

const (
	// Stay leaves the window as is.
	Stay Direction = iota
	// Backward moves to the previous month.
	Backward
	// Forward moves to the next month.
	Forward
)

func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "stay"
	}
}

// DirectionForPage maps a settled pager index to a move relative to the
// center page.
func DirectionForPage(index int) Direction {
	switch {
	case index < CenterIndex:
		return Backward
	case index > CenterIndex:
		return Forward
	default:
		return Stay
	}
}

// Window holds previous, current and next month. Every transition returns a
// new Window; on error the receiver is still the valid window.
type Window struct {
	slots [3]calendar.Month
}

// New seeds a window around the month containing forDate.
func New(forDate time.Time, cal calendar.Calendar) (Window, error) {
	slots, err := calendar.SurroundingMonths(forDate, cal)
	if err != nil {
		return Window{}, fmt.Errorf("window: seed %s: %w", forDate.Format("2006-01-02"), err)
	}
	return Window{slots: slots}, nil
}

// Slots returns previous, current and next.
func (w Window) Slots() [3]calendar.Month { return w.slots }

// Previous is the month before Current.
func (w Window) Previous() calendar.Month { return w.slots[0] }

// Current is the centered month.
func (w Window) Current() calendar.Month { return w.slots[CenterIndex] }

// Next is the month after Current.
func (w Window) Next() calendar.Month { return w.slots[2] }

// CurrentIndex is always CenterIndex; the window re-centers after every move.
func (w Window) CurrentIndex() int { return CenterIndex }

// Rows is the number of week rows of the current month.
func (w Window) Rows() int { return len(w.Current().Weeks) }

// Advance moves one month. Only one new month is built; the other two
// slots are reused.
func (w Window) Advance(d Direction) (Window, error) {
	switch d {
	case Backward:
		prev, err := w.Previous().Previous()
		if err != nil {
			return w, fmt.Errorf("window: advance %s: %w", d, err)
		}
		return Window{slots: [3]calendar.Month{prev, w.Previous(), w.Current()}}, nil
	case Forward:
		next, err := w.Next().Next()
		if err != nil {
			return w, fmt.Errorf("window: advance %s: %w", d, err)
		}
		return Window{slots: [3]calendar.Month{w.Current(), w.Next(), next}}, nil
	default:
		return w, nil
	}
}

// Page applies a settled pager index: below center moves backward, above
// moves forward, center is a no-op.
func (w Window) Page(index int) (Window, error) {
	return w.Advance(DirectionForPage(index))
}

// JumpTo re-seeds the window around date using the current calendar.
func (w Window) JumpTo(date time.Time) (Window, error) {
	cal := w.Current().Calendar()
	if cal == nil {
		return w, fmt.Errorf("window: not initialized")
	}
	next, err := New(date, cal)
	if err != nil {
		return w, err
	}
	return next, nil
}

// JumpToToday is JumpTo(now).
func (w Window) JumpToToday(now time.Time) (Window, error) {
	return w.JumpTo(now)
}
