package store

import (
	"context"
	"testing"
)

func TestStoreListAndDelete(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	later := NewRecord("work", "2024-03-09", "retro")
	earlier := NewRecord("work", "2024-03-05", "planning")
	home := NewRecord("", "2024-03-05", "groceries")
	for _, r := range []*Record{later, earlier, home} {
		if err := p.Store(r); err != nil {
			t.Fatalf("store %q: %v", r.Title, err)
		}
	}

	work := p.List(ctx, "work")
	if len(work) != 2 {
		t.Fatalf("expected 2 work records, got %d", len(work))
	}
	if work[0].Title != "planning" || work[1].Title != "retro" {
		t.Fatalf("expected records sorted by day, got %q then %q", work[0].Title, work[1].Title)
	}
	if work[0].ID != earlier.ID {
		t.Fatalf("expected id %s, got %s", earlier.ID, work[0].ID)
	}

	all := p.ListAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}

	cals := p.Calendars(ctx)
	if len(cals) != 2 || cals[0] != DefaultCalendar || cals[1] != "work" {
		t.Fatalf("expected [personal work], got %v", cals)
	}

	if err := p.Delete(later); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(p.List(ctx, "work")); got != 1 {
		t.Fatalf("expected 1 work record after delete, got %d", got)
	}
}

func TestStoreRequiresDay(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Store(&Record{Title: "no day"}); err == nil {
		t.Fatalf("expected error for record without day")
	}
}

func TestKeyRoundTrip(t *testing.T) {
	r := &Record{ID: "6f1c2f5e-9c55-4d39-8d7e-0c1f7d1b9a10", Calendar: "work", Day: "2024-03-05"}
	key := toKey(r)
	pk := keyToPathTransform(key)
	if pk.FileName != r.ID {
		t.Fatalf("expected file name %s, got %s", r.ID, pk.FileName)
	}
	if len(pk.Path) != 4 || pk.Path[1] != "2024" || pk.Path[3] != "05" {
		t.Fatalf("unexpected path %v", pk.Path)
	}
	if got := pathToKeyTransform(pk); got != key {
		t.Fatalf("expected %s, got %s", key, got)
	}
	if got := fromCalendar(pk.Path[0]); got != "work" {
		t.Fatalf("expected calendar work, got %s", got)
	}
}

func TestSettingsCalendar(t *testing.T) {
	cal, err := Settings{Locale: "de", Timezone: "Europe/Berlin"}.Calendar()
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if cal.FirstWeekday() != 2 {
		t.Fatalf("expected Monday first for de, got %d", cal.FirstWeekday())
	}
	if cal.Location().String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", cal.Location())
	}
	if _, err := (Settings{Timezone: "Nowhere/Atlantis"}).Calendar(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
	if got := (Settings{}).Pattern(); got != "MM/dd/yyyy" {
		t.Fatalf("expected default pattern, got %s", got)
	}
}
