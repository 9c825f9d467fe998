package window

import (
	"time"

	"github.com/samber/mo"

	"tableflip.dev/calendarlist/pkg/calendar"
)

// Msg is an input to State.Apply.
type Msg interface {
	isMsg()
}

// PageChanged is sent by a pager once it settles on page Index (0..2).
type PageChanged struct{ Index int }

// Step is a previous/next button press.
type Step struct{ Direction Direction }

// Today jumps to and selects the day of Now.
type Today struct{ Now time.Time }

// Select marks Date as the selected day.
type Select struct{ Date time.Time }

func (PageChanged) isMsg() {}
func (Step) isMsg()        {}
func (Today) isMsg()       {}
func (Select) isMsg()      {}

// State is what a calendar presenter holds: the window, the selected day
// and the pager page, which is always CenterIndex between transitions.
type State struct {
	Window   Window
	Selected mo.Option[time.Time]
	Page     int
}

// NewState seeds the window around forDate and selects that day.
func NewState(forDate time.Time, cal calendar.Calendar) (State, error) {
	w, err := New(forDate, cal)
	if err != nil {
		return State{}, err
	}
	day, err := calendar.Normalize(forDate, cal)
	if err != nil {
		return State{}, err
	}
	return State{Window: w, Selected: mo.Some(day), Page: CenterIndex}, nil
}

// Apply returns the state after msg. On error the returned state is s.
func (s State) Apply(msg Msg) (State, error) {
	next := s
	switch msg := msg.(type) {
	case PageChanged:
		w, err := s.Window.Page(msg.Index)
		if err != nil {
			return s, err
		}
		next.Window = w
	case Step:
		w, err := s.Window.Advance(msg.Direction)
		if err != nil {
			return s, err
		}
		next.Window = w
	case Today:
		w, err := s.Window.JumpToToday(msg.Now)
		if err != nil {
			return s, err
		}
		day, err := calendar.Normalize(msg.Now, w.Current().Calendar())
		if err != nil {
			return s, err
		}
		next.Window = w
		next.Selected = mo.Some(day)
	case Select:
		cal := s.Window.Current().Calendar()
		if cal == nil {
			return s, nil
		}
		day, err := calendar.Normalize(msg.Date, cal)
		if err != nil {
			return s, err
		}
		next.Selected = mo.Some(day)
	}
	next.Page = CenterIndex
	return next, nil
}

// IsSelected reports whether day is the selected day.
func (s State) IsSelected(day time.Time) bool {
	selected, ok := s.Selected.Get()
	if !ok {
		return false
	}
	cal := s.Window.Current().Calendar()
	if cal == nil {
		return false
	}
	return calendar.IsSameDay(selected, day, cal)
}
