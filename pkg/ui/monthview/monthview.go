// Package monthview renders a calendar month as a grid of day cells.
package monthview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/mo"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/ui/theme"
)

// CellWidth is the printable width of one day cell.
const CellWidth = 2

// Width is the printable width of a rendered week.
const Width = 7*CellWidth + 6

// Day describes metadata used when rendering the calendar.
type Day struct {
	Day        int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
	// Heat, when set, colors the day by how busy it is.
	Heat string
}

// Options controls the styling of the rendered calendar.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	WeekendStyle  lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowTitle     bool
	ShowHeader    bool
	Circled       bool
}

// DefaultOptions returns the options for a theme.
func DefaultOptions(t theme.Theme) Options {
	return Options{
		TitleStyle:    t.Calendar.Title,
		HeaderStyle:   t.Calendar.Header,
		WeekendStyle:  t.Calendar.Weekend,
		EmptyStyle:    t.Calendar.Empty,
		EntryStyle:    t.Calendar.Entry,
		TodayStyle:    t.Calendar.Today,
		SelectedStyle: t.Calendar.Selected,
		ShowTitle:     true,
		ShowHeader:    true,
	}
}

// EventSource reports days that carry events.
type EventSource interface {
	HasEvents(date time.Time) bool
}

// Annotate builds the Day metadata for m. events may be nil.
func Annotate(m calendar.Month, events EventSource, today time.Time, selected mo.Option[time.Time]) []Day {
	cal := m.Calendar()
	if cal == nil {
		return nil
	}
	days := m.Days()
	out := make([]Day, 0, len(days))
	for _, d := range days {
		info := Day{
			Day:     cal.Components(d).Day,
			IsToday: !today.IsZero() && calendar.IsSameDay(d, today, cal),
		}
		if events != nil {
			info.HasEntry = events.HasEvents(d)
		}
		if sel, ok := selected.Get(); ok {
			info.IsSelected = calendar.IsSameDay(d, sel, cal)
		}
		out = append(out, info)
	}
	return out
}

// Render produces a multi-line calendar string for the given month. Columns
// start at the calendar's first weekday.
func Render(m calendar.Month, days []Day, opts Options) (string, error) {
	cal := m.Calendar()
	if cal == nil || len(m.Weeks) == 0 {
		return "", nil
	}
	symbols, err := calendar.LocalizedWeekdaySymbols(cal)
	if err != nil {
		return "", err
	}

	meta := make(map[int]Day, len(days))
	for _, d := range days {
		meta[d.Day] = d
	}

	var lines []string
	if opts.ShowTitle {
		lines = append(lines, lipgloss.PlaceHorizontal(Width, lipgloss.Center, opts.TitleStyle.Render(m.Title())))
	}
	if opts.ShowHeader {
		cells := make([]string, 0, len(symbols))
		for _, s := range symbols {
			style := opts.HeaderStyle
			if s.IsWeekend {
				style = style.Inherit(opts.WeekendStyle)
			}
			cells = append(cells, style.Render(cell(truncate.String(s.Symbol, CellWidth))))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	for w, week := range m.Weeks {
		var cells []string
		if w == 0 {
			for i := 0; i < m.LeadingBlanks(); i++ {
				cells = append(cells, opts.EmptyStyle.Render(cell("")))
			}
		}
		for _, d := range week {
			if len(cells) == len(symbols) {
				return "", fmt.Errorf("monthview: %s week %d has more than %d days", m.Key(), w+1, len(symbols))
			}
			n := cal.Components(d).Day
			cells = append(cells, renderDay(meta[n], n, cal.IsWeekend(d), opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n"), nil
}

func renderDay(info Day, day int, weekend bool, opts Options) string {
	glyph := fmt.Sprintf("%2d", day)
	if opts.Circled {
		glyph = cell(dayGlyph(day))
	}

	style := opts.EmptyStyle
	if weekend {
		style = opts.WeekendStyle.Inherit(opts.EmptyStyle)
	}
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.Heat != "" {
		style = style.Foreground(lipgloss.Color(info.Heat))
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(glyph)
}

// cell right-aligns s in CellWidth columns.
func cell(s string) string {
	if pad := CellWidth - lipgloss.Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func dayGlyph(day int) string {
	if day < 0 || day >= len(whiteCircledDigits) {
		return "  "
	}
	return whiteCircledDigits[day]
}

var whiteCircledDigits = []string{
	"⓪",
	"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩",
	"⑪", "⑫", "⑬", "⑭", "⑮", "⑯", "⑰", "⑱", "⑲", "⑳",
	"㉑", "㉒", "㉓", "㉔", "㉕", "㉖", "㉗", "㉘", "㉙", "㉚",
	"㉛",
}
