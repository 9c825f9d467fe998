package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventCalendarChanged indicates records of one calendar were added,
	// edited or removed.
	EventCalendarChanged EventType = iota

	// EventCalendarsInvalidated signals a change that could not be tied to
	// one calendar; callers should reload everything.
	EventCalendarsInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventCalendarChanged:
		return "changed"
	case EventCalendarsInvalidated:
		return "invalidated"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is emitted by Persistence.Watch when underlying storage changes.
// Day is the yyyy-MM-dd of the records that changed; it is empty when the
// change covers a whole calendar.
type Event struct {
	Type     EventType
	Calendar string
	Day      string
}

// watchDelay coalesces bursts of writes, such as an ics import, into one event
// per calendar.
const watchDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. The channel is closed
// once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.log.Warnf("watcher close: %v", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; its next reload picks this change up.
			}
		}

		throttle := newEventThrottle(watchDelay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Debugf("watcher error: %v", err)
				throttle.Enqueue(Event{Type: EventCalendarsInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				// diskv fans records out into nested day directories; new
				// ones must be watched to see the files written into them.
				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						added, err := collectDirs(filepath.Clean(evt.Name))
						if err != nil {
							p.log.Warnf("enumerate %s: %v", evt.Name, err)
						}
						for _, dir := range added {
							if _, found := watched[dir]; found {
								continue
							}
							if err := watcher.Add(dir); err != nil {
								p.log.Warnf("watch %s: %v", dir, err)
								continue
							}
							watched[dir] = struct{}{}
						}
					}
				}

				name, day := p.locate(evt.Name)
				if name == "" {
					throttle.Enqueue(Event{Type: EventCalendarsInvalidated}, send)
					continue
				}
				throttle.Enqueue(Event{Type: EventCalendarChanged, Calendar: name, Day: day}, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// locate derives the calendar name and, below the day directories, the day
// from a diskv path laid out as calendar/yyyy/MM/dd/id.
func (p *persistence) locate(path string) (name, day string) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return "", ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) == 0 || parts[0] == "" {
		return "", ""
	}
	if _, err := calendarEncoding.DecodeString(parts[0]); err != nil {
		return "", ""
	}
	name = fromCalendar(parts[0])
	if len(parts) < 4 {
		return name, ""
	}
	day = strings.Join(parts[1:4], "-")
	if _, err := time.Parse(time.DateOnly, day); err != nil {
		return name, ""
	}
	return name, day
}

// eventThrottle collapses a burst of writes into one event per calendar day.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[ev] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	t.mu.Unlock()

	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
