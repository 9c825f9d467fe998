package calendar

import (
	"fmt"
	"time"
)

// WeekdaySymbol is a header label. Order is the canonical weekday index
// (0 = Sunday) and stays stable however the header is rotated.
type WeekdaySymbol struct {
	Symbol    string
	IsWeekend bool
	Order     int
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time, cal Calendar) bool {
	return cal.CompareDay(a, b) == 0
}

// Normalize clears the time of day of t.
func Normalize(t time.Time, cal Calendar) (time.Time, error) {
	return cal.StartOfDay(t)
}

// LocalizedWeekdaySymbols returns the calendar's weekday symbols rotated to
// start at its first weekday.
func LocalizedWeekdaySymbols(cal Calendar) ([]WeekdaySymbol, error) {
	symbols := cal.WeekdaySymbols()
	if len(symbols) != 7 {
		return nil, fmt.Errorf("calendar: expected 7 weekday symbols, got %d", len(symbols))
	}
	first := cal.FirstWeekday() - 1
	if first < 0 || first > 6 {
		return nil, fmt.Errorf("calendar: first weekday %d out of range 1..7", first+1)
	}

	out := make([]WeekdaySymbol, 0, len(symbols))
	for n := 0; n < len(symbols); n++ {
		i := (first + n) % len(symbols)
		out = append(out, WeekdaySymbol{
			Symbol:    symbols[i],
			IsWeekend: isWeekendIndex(i),
			Order:     i,
		})
	}
	return out, nil
}

// Weekend is fixed to Sunday and Saturday.
// TODO: take weekend days from Locale once Friday/Saturday locales need it.
func isWeekendIndex(i int) bool {
	return i == 0 || i == 6
}

// BuildMonth lays out every day of year/month into week rows. A new row
// starts on the calendar's first weekday once at least one day is placed,
// so only the first and last rows can be partial.
func BuildMonth(year, month int, cal Calendar) (Month, error) {
	anchor, err := cal.Date(year, month, 1)
	if err != nil {
		return Month{}, asConfigError(year, month, 1, err)
	}
	days, err := cal.DaysInMonth(year, month)
	if err != nil {
		return Month{}, asConfigError(year, month, 1, err)
	}
	if days < 1 {
		return Month{}, configError(year, month, 1, fmt.Errorf("month reports %d days: %w", days, ErrInvalidDate))
	}

	first := cal.FirstWeekday()
	weeks := [][]time.Time{make([]time.Time, 0, 7)}
	placed := 0
	for d := 1; d <= days; d++ {
		date, err := cal.Date(year, month, d)
		if err != nil {
			return Month{}, asConfigError(year, month, d, err)
		}
		c := cal.Components(date)
		if c.Year != year || c.Month != month || c.Day != d {
			return Month{}, configError(year, month, d, fmt.Errorf("calendar built %04d-%02d-%02d: %w", c.Year, c.Month, c.Day, ErrInvalidDate))
		}
		if placed > 0 && c.Weekday == first {
			weeks = append(weeks, make([]time.Time, 0, 7))
		}
		w := len(weeks) - 1
		if len(weeks[w]) == 7 {
			return Month{}, configError(year, month, d, fmt.Errorf("week %d exceeds 7 days: %w", w+1, ErrInvalidDate))
		}
		weeks[w] = append(weeks[w], date)
		placed++
	}

	return Month{
		Year:   year,
		Month:  month,
		Anchor: anchor,
		Weeks:  weeks,
		cal:    cal,
	}, nil
}

// BuildMonthFor builds the month containing t.
func BuildMonthFor(t time.Time, cal Calendar) (Month, error) {
	c := cal.Components(t)
	return BuildMonth(c.Year, c.Month, cal)
}

// MonthsOfYear builds every month of the year containing t.
func MonthsOfYear(t time.Time, cal Calendar) ([]Month, error) {
	year := cal.Components(t).Year
	n := cal.MonthsInYear(year)
	if n <= 0 {
		n = 12
	}
	months := make([]Month, 0, n)
	for i := 1; i <= n; i++ {
		m, err := BuildMonth(year, i, cal)
		if err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, nil
}

// SurroundingMonths returns the month containing t with its neighbours:
// previous, current, next.
func SurroundingMonths(t time.Time, cal Calendar) ([3]Month, error) {
	m, err := BuildMonthFor(t, cal)
	if err != nil {
		return [3]Month{}, err
	}
	return m.Surrounding()
}
