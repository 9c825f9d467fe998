package calendar

import (
	"testing"
	"time"
)

func TestGregorianDateRejectsOverflow(t *testing.T) {
	cal := mustGregorian(t)
	if _, err := cal.Date(2023, 2, 29); err == nil {
		t.Fatalf("expected error for Feb 29 2023")
	}
	if _, err := cal.Date(2024, 2, 29); err != nil {
		t.Fatalf("expected Feb 29 2024 to exist: %v", err)
	}
}

func TestGregorianAddMonthsClamps(t *testing.T) {
	cal := mustGregorian(t)
	jan31 := time.Date(2023, 1, 31, 9, 0, 0, 0, time.UTC)

	got, err := cal.AddMonths(jan31, 1)
	if err != nil {
		t.Fatalf("add months: %v", err)
	}
	if got.Month() != time.February || got.Day() != 28 || got.Hour() != 9 {
		t.Fatalf("expected Feb 28 09:00, got %v", got)
	}

	got, _ = cal.AddMonths(jan31, -1)
	if got.Year() != 2022 || got.Month() != time.December || got.Day() != 31 {
		t.Fatalf("expected Dec 31 2022, got %v", got)
	}

	got, _ = cal.AddMonths(jan31, -13)
	if got.Year() != 2021 || got.Month() != time.December {
		t.Fatalf("expected Dec 2021, got %v", got)
	}
}

func TestGregorianFirstWeekday(t *testing.T) {
	de, _ := LookupLocale("de-DE")
	cal := mustGregorian(t, WithLocale(de))
	if cal.FirstWeekday() != 2 {
		t.Fatalf("expected Monday first for de, got %d", cal.FirstWeekday())
	}
	cal = mustGregorian(t, WithLocale(de), WithFirstWeekday(1))
	if cal.FirstWeekday() != 1 {
		t.Fatalf("expected override to Sunday, got %d", cal.FirstWeekday())
	}
	if _, err := NewGregorian(WithFirstWeekday(8)); err == nil {
		t.Fatalf("expected error for first weekday 8")
	}
}

func TestLookupLocale(t *testing.T) {
	for name, want := range map[string]string{
		"":      "en-US",
		"en":    "en-US",
		"en-GB": "en-GB",
		"de-AT": "de",
		"es-MX": "es",
		"ar-SA": "ar-SA",
	} {
		l, err := LookupLocale(name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		if l.Tag.String() != want {
			t.Fatalf("lookup %q: expected %s, got %s", name, want, l.Tag)
		}
	}
	if _, err := LookupLocale("not a tag!"); err == nil {
		t.Fatalf("expected parse error")
	}
}
