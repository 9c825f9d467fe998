package icsimport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/store"
)

const feed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//calendarlist//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:party@example.com\r\n" +
	"DTSTAMP:20261001T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20261031\r\n" +
	"SUMMARY:Party\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

type memPersistence struct {
	store.Persistence
	records []*store.Record
}

func (p *memPersistence) List(_ context.Context, name string) []*store.Record {
	var out []*store.Record
	for _, r := range p.records {
		if r.Calendar == name {
			out = append(out, r)
		}
	}
	return out
}

func (p *memPersistence) Store(r *store.Record) error {
	cp := *r
	p.records = append(p.records, &cp)
	return nil
}

func TestImportFile(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "party.ics")
	if err := os.WriteFile(path, []byte(feed), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cal, err := calendar.NewGregorian(calendar.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	p := &memPersistence{}
	var buf bytes.Buffer
	n := Import{
		Service:  &app.Service{Persistence: p, Calendar: cal},
		Calendar: "friends",
		File:     path,
		Out:      &buf,
		Now:      time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(p.records) != 1 || p.records[0].Day != "2026-10-31" || p.records[0].Title != "Party" {
		t.Fatalf("unexpected records %+v", p.records)
	}
	if strings.TrimSpace(buf.String()) != "imported 1 events into friends" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "(1 already present)") {
		t.Fatalf("expected duplicate note, got %q", buf.String())
	}
}

func TestImportMissingFile(t *testing.T) {
	cal, err := calendar.NewGregorian()
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	n := Import{Service: &app.Service{Persistence: &memPersistence{}, Calendar: cal}, File: filepath.Join(t.TempDir(), "nope.ics")}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
