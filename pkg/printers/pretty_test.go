package printers

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/event"
	"tableflip.dev/calendarlist/pkg/store"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func gregorian(t *testing.T, first int) calendar.Calendar {
	t.Helper()
	cal, err := calendar.NewGregorian(calendar.WithLocation(time.UTC), calendar.WithFirstWeekday(first))
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	return cal
}

func TestMonth(t *testing.T) {
	cal := gregorian(t, 2)
	m, err := calendar.BuildMonth(2024, 2, cal)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	if err := pp.Month(m, nil, time.Time{}); err != nil {
		t.Fatalf("print: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if strings.TrimSpace(lines[0]) != "February 2024" {
		t.Fatalf("expected title, got %q", lines[0])
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("expected Monday first header, got %q", lines[1])
	}
	if lines[2] != "          1  2  3  4" {
		t.Fatalf("expected padded first week, got %q", lines[2])
	}
	if lines[6] != "26 27 28 29" {
		t.Fatalf("expected last week, got %q", lines[6])
	}
}

func TestMonthLong(t *testing.T) {
	cal := gregorian(t, 1)
	m, err := calendar.BuildMonth(2024, 3, cal)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	e, err := event.Parse("2024-03-05", "yyyy-MM-dd", store.Record{Title: "Dentist", Calendar: "personal"}, cal)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	idx, err := event.NewIndex(cal, []event.Event[store.Record]{e})
	if err != nil {
		t.Fatalf("index: %v", err)
	}

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	if err := pp.MonthLong(m, idx, time.Time{}); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, " 5 Tu  Dentist (personal)") {
		t.Fatalf("expected event line, got:\n%s", out)
	}
	if strings.Count(out, "\n") < 31 {
		t.Fatalf("expected a line per day, got:\n%s", out)
	}
}

func TestRecords(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Records()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none, got %q", buf.String())
	}

	buf.Reset()
	pp.Records(store.Record{Calendar: "work", Title: "Standup", Location: "Room 4"})
	if !strings.Contains(buf.String(), "Standup") || !strings.Contains(buf.String(), "@ Room 4") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWeekdays(t *testing.T) {
	symbols, err := calendar.LocalizedWeekdaySymbols(gregorian(t, 2))
	if err != nil {
		t.Fatalf("symbols: %v", err)
	}
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Weekdays(symbols)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected header and 7 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "Mo") {
		t.Fatalf("expected Monday first, got %q", lines[1])
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatalf("json: %v", err)
	}
	if buf.String() != "{\n  \"a\": 1\n}\n" {
		t.Fatalf("unexpected json %q", buf.String())
	}
}

func TestNewMonthJSON(t *testing.T) {
	cal := gregorian(t, 1)
	m, err := calendar.BuildMonth(2024, 2, cal)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	e, err := event.Parse("2024-02-29", "yyyy-MM-dd", store.Record{Title: "Leap"}, cal)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	idx, err := event.NewIndex(cal, []event.Event[store.Record]{e})
	if err != nil {
		t.Fatalf("index: %v", err)
	}

	got, err := NewMonthJSON(m, idx)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if got.FirstWeekday != 1 || got.Weekdays[0] != "Su" {
		t.Fatalf("unexpected weekdays %v", got.Weekdays)
	}
	if len(got.Weeks) != 5 || len(got.Weeks[0]) != 3 || got.Weeks[0][0] != "2024-02-01" {
		t.Fatalf("unexpected weeks %v", got.Weeks)
	}
	if len(got.Events["2024-02-29"]) != 1 {
		t.Fatalf("expected leap day event, got %v", got.Events)
	}
	if got.LeadingBlanks != 4 || got.TrailingBlanks != 2 {
		t.Fatalf("expected 4 leading and 2 trailing blanks, got %d and %d", got.LeadingBlanks, got.TrailingBlanks)
	}
	if len(got.BusyDays) != 1 || got.BusyDays[0] != 29 {
		t.Fatalf("expected busy day 29, got %v", got.BusyDays)
	}
}
