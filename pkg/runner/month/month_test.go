package month

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/printers"
	"tableflip.dev/calendarlist/pkg/store"
)

type fakePersistence struct {
	store.Persistence
	records []*store.Record
}

func (f *fakePersistence) ListAll(context.Context) []*store.Record { return f.records }

func (f *fakePersistence) List(_ context.Context, name string) []*store.Record {
	var out []*store.Record
	for _, r := range f.records {
		if r.Calendar == name {
			out = append(out, r)
		}
	}
	return out
}

func service(t *testing.T, records ...*store.Record) *app.Service {
	t.Helper()
	cal, err := calendar.NewGregorian(calendar.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	return &app.Service{Persistence: &fakePersistence{records: records}, Calendar: cal}
}

func TestParseYearMonth(t *testing.T) {
	tests := map[string]struct {
		year, month int
		wantErr     bool
	}{
		"2024-03":  {year: 2024, month: 3},
		"2024-3":   {year: 2024, month: 3},
		" 1999-12": {year: 1999, month: 12},
		"2024-13":  {wantErr: true},
		"2024":     {wantErr: true},
		"2024-03x": {wantErr: true},
		"March":    {wantErr: true},
	}
	for in, tc := range tests {
		t.Run(in, func(t *testing.T) {
			y, m, err := ParseYearMonth(in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d-%d", y, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if y != tc.year || m != tc.month {
				t.Fatalf("expected %d-%d, got %d-%d", tc.year, tc.month, y, m)
			}
		})
	}
}

func TestMonthDefaultsToNow(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	n := Month{
		Service: service(t),
		Out:     &buf,
		Now:     time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC),
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "October 2026") {
		t.Fatalf("expected October 2026, got:\n%s", buf.String())
	}
}

func TestMonthJSON(t *testing.T) {
	var buf bytes.Buffer
	n := Month{
		Service: service(t, store.NewRecord("work", "2024-03-05", "Review")),
		Year:    2024,
		Month:   3,
		JSON:    true,
		Out:     &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got printers.MonthJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Title != "March 2024" || len(got.Weeks) != 6 {
		t.Fatalf("unexpected month %+v", got)
	}
	if len(got.Events["2024-03-05"]) != 1 {
		t.Fatalf("expected event on 2024-03-05, got %v", got.Events)
	}
}

func TestMonthInvalid(t *testing.T) {
	n := Month{Service: service(t), Year: 2024, Month: 13, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("expected error for month 13")
	}
}
