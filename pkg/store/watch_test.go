package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Settings() Settings {
	return Settings{Locale: "en", Timezone: "UTC"}
}

func TestPersistenceWatchEmitsCalendarChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Store(NewRecord("work", "2024-03-05", "planning")); err != nil {
		t.Fatalf("store record: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type != EventCalendarChanged {
				continue
			}
			if evt.Calendar != "work" {
				t.Fatalf("expected calendar 'work', got %q", evt.Calendar)
			}
			if evt.Day == "2024-03-05" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for a change on 2024-03-05")
		}
	}
}

func TestLocate(t *testing.T) {
	base := t.TempDir()
	p := &persistence{basePath: base}
	dir := filepath.Join(base, toCalendar("work"))

	for path, want := range map[string][2]string{
		base:                                          {"", ""},
		dir:                                           {"work", ""},
		filepath.Join(dir, "2024", "03"):              {"work", ""},
		filepath.Join(dir, "2024", "03", "05", "abc"): {"work", "2024-03-05"},
		filepath.Join(dir, "2024", "13", "05", "abc"): {"work", ""},
		filepath.Join(base, "not base32!"):            {"", ""},
	} {
		name, day := p.locate(path)
		if name != want[0] || day != want[1] {
			t.Fatalf("%s: expected %q %q, got %q %q", path, want[0], want[1], name, day)
		}
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(10 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	a := Event{Type: EventCalendarChanged, Calendar: "work", Day: "2024-03-05"}
	b := Event{Type: EventCalendarChanged, Calendar: "work", Day: "2024-03-06"}
	th.Enqueue(a, send)
	th.Enqueue(a, send)
	th.Enqueue(b, send)

	seen := map[Event]int{}
	deadline := time.After(time.Second)
	for len(seen) < 2 {
		select {
		case ev := <-got:
			seen[ev]++
		case <-deadline:
			t.Fatalf("expected two events, got %v", seen)
		}
	}
	time.Sleep(30 * time.Millisecond)
	if len(got) != 0 || seen[a] != 1 || seen[b] != 1 {
		t.Fatalf("expected one event per day, got %v and %d more", seen, len(got))
	}
}
