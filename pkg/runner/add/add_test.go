package add

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
	"tableflip.dev/calendarlist/pkg/store"
)

type recordingPersistence struct {
	store.Persistence
	records []*store.Record
}

func (p *recordingPersistence) Store(r *store.Record) error {
	cp := *r
	p.records = append(p.records, &cp)
	return nil
}

func (p *recordingPersistence) ListAll(context.Context) []*store.Record { return p.records }

func (p *recordingPersistence) List(_ context.Context, name string) []*store.Record {
	var out []*store.Record
	for _, r := range p.records {
		if r.Calendar == name {
			out = append(out, r)
		}
	}
	return out
}

func service(t *testing.T) (*app.Service, *recordingPersistence) {
	t.Helper()
	cal, err := calendar.NewGregorian(calendar.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	p := &recordingPersistence{}
	return &app.Service{Persistence: p, Calendar: cal}, p
}

func TestAddToday(t *testing.T) {
	color.NoColor = true
	svc, p := service(t)
	var buf bytes.Buffer
	n := Add{
		Service: svc,
		Title:   "Call mom",
		Out:     &buf,
		Now:     time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC),
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(p.records) != 1 || p.records[0].Day != "2026-10-19" || p.records[0].Calendar != store.DefaultCalendar {
		t.Fatalf("unexpected records %+v", p.records)
	}
	out := buf.String()
	if !strings.Contains(out, "Monday, October 19, 2026 - 1 event") || !strings.Contains(out, "Call mom") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestAddOnWithPattern(t *testing.T) {
	svc, p := service(t)
	var buf bytes.Buffer
	n := Add{
		Service:  svc,
		Calendar: "work",
		Title:    "Offsite",
		On:       "31.12.2026",
		Pattern:  "dd.MM.yyyy",
		JSON:     true,
		Out:      &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got store.Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Day != "2026-12-31" || got.Calendar != "work" || len(p.records) != 1 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestAddBadDate(t *testing.T) {
	svc, p := service(t)
	n := Add{Service: svc, Title: "x", On: "2026-12-31", Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("expected parse error with default pattern")
	}
	if len(p.records) != 0 {
		t.Fatal("expected nothing stored")
	}
}
