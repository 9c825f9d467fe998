package calendar

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Gregorian is the proleptic Gregorian calendar in a fixed location.
type Gregorian struct {
	loc          *time.Location
	firstWeekday int
	locale       Locale
}

// Option configures a Gregorian calendar.
type Option func(*Gregorian) error

// WithLocation sets the location days are computed in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(g *Gregorian) error {
		if loc == nil {
			return fmt.Errorf("calendar: nil location")
		}
		g.loc = loc
		return nil
	}
}

// WithLocale sets the symbol tables and, unless WithFirstWeekday overrides
// it, the first weekday.
func WithLocale(l Locale) Option {
	return func(g *Gregorian) error {
		g.locale = l
		return nil
	}
}

// WithFirstWeekday overrides the locale's first weekday. Zero keeps the
// locale default.
func WithFirstWeekday(weekday int) Option {
	return func(g *Gregorian) error {
		if weekday == 0 {
			return nil
		}
		if weekday < 1 || weekday > 7 {
			return fmt.Errorf("calendar: first weekday %d out of range 1..7", weekday)
		}
		g.firstWeekday = weekday
		return nil
	}
}

// NewGregorian returns a Gregorian calendar, American English in time.Local
// unless configured otherwise.
func NewGregorian(opts ...Option) (*Gregorian, error) {
	g := &Gregorian{
		loc:    time.Local,
		locale: DefaultLocale(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FirstWeekday implements Calendar.
func (g *Gregorian) FirstWeekday() int {
	if g.firstWeekday != 0 {
		return g.firstWeekday
	}
	return g.locale.FirstWeekday
}

// WeekdaySymbols implements Calendar.
func (g *Gregorian) WeekdaySymbols() []string {
	out := make([]string, len(g.locale.Weekdays))
	copy(out, g.locale.Weekdays[:])
	return out
}

// MonthSymbols implements Calendar.
func (g *Gregorian) MonthSymbols() []string {
	out := make([]string, len(g.locale.Months))
	copy(out, g.locale.Months[:])
	return out
}

// Language implements Calendar.
func (g *Gregorian) Language() language.Tag { return g.locale.Tag }

// Location implements Calendar.
func (g *Gregorian) Location() *time.Location { return g.loc }

// MonthsInYear implements Calendar.
func (g *Gregorian) MonthsInYear(int) int { return 12 }

// DaysInMonth implements Calendar.
func (g *Gregorian) DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, configError(year, month, 1, fmt.Errorf("month %d out of range: %w", month, ErrInvalidDate))
	}
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// Date implements Calendar. Unlike time.Date it never normalizes an
// out-of-range day into the next month.
func (g *Gregorian) Date(year, month, day int) (time.Time, error) {
	n, err := g.DaysInMonth(year, month)
	if err != nil {
		return time.Time{}, err
	}
	if day < 1 || day > n {
		return time.Time{}, configError(year, month, day, fmt.Errorf("day %d out of range 1..%d: %w", day, n, ErrInvalidDate))
	}
	return g.onDay(time.Date(year, time.Month(month), day, 0, 0, 0, 0, g.loc), year, month, day)
}

// onDay returns the first instant of year/month/day when a zone transition
// skips midnight and time.Date resolved into the previous day.
func (g *Gregorian) onDay(t time.Time, year, month, day int) (time.Time, error) {
	t = t.In(g.loc)
	if t.Day() == day {
		return t, nil
	}
	if _, end := t.ZoneBounds(); !end.IsZero() {
		end = end.In(g.loc)
		if end.Year() == year && int(end.Month()) == month && end.Day() == day {
			return end, nil
		}
	}
	for h := 1; h < 24; h++ {
		c := time.Date(year, time.Month(month), day, h, 0, 0, 0, g.loc)
		if c.Day() == day {
			return c, nil
		}
	}
	return time.Time{}, configError(year, month, day, fmt.Errorf("no instant on this day in %s: %w", g.loc, ErrInvalidDate))
}

// AddMonths implements Calendar. The day of month is clamped to the length
// of the target month, so Jan 31 + 1 month is the last day of February.
func (g *Gregorian) AddMonths(t time.Time, months int) (time.Time, error) {
	t = t.In(g.loc)
	total := t.Year()*12 + int(t.Month()) - 1 + months
	year := total / 12
	if total < 0 && total%12 != 0 {
		year--
	}
	month := total - year*12 + 1
	n, err := g.DaysInMonth(year, month)
	if err != nil {
		return time.Time{}, err
	}
	day := t.Day()
	if day > n {
		day = n
	}
	out := time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), g.loc)
	if out.Day() != day {
		return g.onDay(out, year, month, day)
	}
	return out, nil
}

// Components implements Calendar.
func (g *Gregorian) Components(t time.Time) Components {
	t = t.In(g.loc)
	return Components{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Weekday: int(t.Weekday()) + 1,
	}
}

// StartOfDay implements Calendar.
func (g *Gregorian) StartOfDay(t time.Time) (time.Time, error) {
	c := g.Components(t)
	return g.Date(c.Year, c.Month, c.Day)
}

// CompareDay implements Calendar.
func (g *Gregorian) CompareDay(a, b time.Time) int {
	ca, cb := g.Components(a), g.Components(b)
	switch {
	case ca.Year != cb.Year:
		return compareInt(ca.Year, cb.Year)
	case ca.Month != cb.Month:
		return compareInt(ca.Month, cb.Month)
	default:
		return compareInt(ca.Day, cb.Day)
	}
}

// IsWeekend implements Calendar. Sunday and Saturday are weekend days.
func (g *Gregorian) IsWeekend(t time.Time) bool {
	w := g.Components(t).Weekday
	return isWeekendIndex(w - 1)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
