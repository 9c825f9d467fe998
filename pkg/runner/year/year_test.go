package year

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

type emptyPersistence struct{ store.Persistence }

func (emptyPersistence) ListAll(context.Context) []*store.Record { return nil }

func service(t *testing.T) *app.Service {
	t.Helper()
	cal, err := calendar.NewGregorian(calendar.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	return &app.Service{Persistence: emptyPersistence{}, Calendar: cal}
}

func TestYear(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	n := Year{Service: service(t), Year: 2024, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	for _, name := range []string{"January 2024", "June 2024", "December 2024"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestYearJSON(t *testing.T) {
	var buf bytes.Buffer
	n := Year{Service: service(t), JSON: true, Out: &buf, Now: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got []printers.MonthJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 12 || got[0].Year != 2026 || got[0].Month != 1 || got[11].Month != 12 {
		t.Fatalf("unexpected months %+v", got)
	}
}
