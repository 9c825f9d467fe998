package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/event"
	"tableflip.dev/calendarlist/pkg/ics"
	"tableflip.dev/calendarlist/pkg/store"
	"tableflip.dev/calendarlist/pkg/timeutil"
)

// Service provides high-level operations over stored records.
// It wraps persistence and calendar math so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence
	Calendar    calendar.Calendar
	// Pattern is the date pattern user input is parsed with.
	Pattern string
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNotFound      = errors.New("app: record not found")
	ErrEmptyTitle    = errors.New("app: title required")
)

func (s *Service) ready() error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if s.Calendar == nil {
		return errors.New("app: no calendar configured")
	}
	return nil
}

func (s *Service) pattern(override string) string {
	if override = strings.TrimSpace(override); override != "" {
		return override
	}
	if s.Pattern != "" {
		return s.Pattern
	}
	return timeutil.DefaultPattern
}

// Calendars returns sorted calendar names.
func (s *Service) Calendars(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	cals := s.Persistence.Calendars(ctx)
	sort.Strings(cals)
	return cals, nil
}

// Records lists records for a calendar, or every record when name is empty.
func (s *Service) Records(ctx context.Context, name string) ([]*store.Record, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if name == "" {
		return s.Persistence.ListAll(ctx), nil
	}
	return s.Persistence.List(ctx, name), nil
}

// Index loads records and indexes them by day. Records whose day cannot be
// read are logged and left out.
func (s *Service) Index(ctx context.Context, name string) (*event.Index[store.Record], error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	records, err := s.Records(ctx, name)
	if err != nil {
		return nil, err
	}
	events := make([]event.Event[store.Record], 0, len(records))
	for _, r := range records {
		e, err := event.Parse(r.Day, timeutil.ISOPattern, *r, s.Calendar)
		if err != nil {
			logrus.WithField("component", "app").WithField("id", r.ID).Warnf("skipping record: %v", err)
			continue
		}
		events = append(events, e)
	}
	return event.NewIndex(s.Calendar, events)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// ParseDay reads a user supplied day with the given pattern, falling back to
// the service pattern. "today" is always accepted.
func (s *Service) ParseDay(value, pattern string, now time.Time) (time.Time, error) {
	if s.Calendar == nil {
		return time.Time{}, errors.New("app: no calendar configured")
	}
	if strings.EqualFold(strings.TrimSpace(value), "today") {
		return calendar.Normalize(now, s.Calendar)
	}
	e, err := event.Parse(strings.TrimSpace(value), s.pattern(pattern), struct{}{}, s.Calendar)
	if err != nil {
		return time.Time{}, err
	}
	return e.Date, nil
}

// Add creates and stores a new record on day.
func (s *Service) Add(ctx context.Context, calendarName string, day time.Time, title string) (*store.Record, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	d, err := calendar.Normalize(day, s.Calendar)
	if err != nil {
		return nil, err
	}
	r := store.NewRecord(calendarName, formatDay(d), title)
	if err := s.Persistence.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Edit updates the title of the record with the given id.
func (s *Service) Edit(ctx context.Context, id, title string) (*store.Record, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Title = strings.TrimSpace(title)
	if err := s.Persistence.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Move reschedules the record with the given id onto day.
func (s *Service) Move(ctx context.Context, id string, day time.Time) (*store.Record, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := calendar.Normalize(day, s.Calendar)
	if err != nil {
		return nil, err
	}
	old := *r
	r.Day = formatDay(d)
	if err := s.Persistence.Store(r); err != nil {
		return nil, err
	}
	// The day is part of the key, so the old copy has to go.
	if old.Day != r.Day {
		if err := s.Persistence.Delete(&old); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Delete removes a record permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	r, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.Persistence.Delete(r)
}

func (s *Service) find(ctx context.Context, id string) (*store.Record, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	for _, r := range s.Persistence.ListAll(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ImportResult reports what an import stored.
type ImportResult struct {
	Calendar string
	Added    int
	Skipped  int
}

// Import reads an iCalendar stream into calendarName. Occurrences already
// imported (same UID on the same day) are skipped.
func (s *Service) Import(ctx context.Context, calendarName string, r io.Reader, im *ics.Importer) (ImportResult, error) {
	if err := s.ready(); err != nil {
		return ImportResult{}, err
	}
	if calendarName = strings.TrimSpace(calendarName); calendarName == "" {
		calendarName = store.DefaultCalendar
	}
	res := ImportResult{Calendar: calendarName}
	if im == nil {
		var err error
		if im, err = ics.NewImporter(s.Calendar, time.Now(), 12); err != nil {
			return res, err
		}
	}
	events, err := im.Decode(r)
	if err != nil {
		return res, err
	}

	seen := make(map[string]bool)
	for _, existing := range s.Persistence.List(ctx, calendarName) {
		if existing.UID != "" {
			seen[existing.UID+"@"+existing.Day] = true
		}
	}
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		day := formatDay(e.Date)
		if e.Data.UID != "" && seen[e.Data.UID+"@"+day] {
			res.Skipped++
			continue
		}
		rec := store.NewRecord(calendarName, day, e.Data.Summary)
		rec.Notes = e.Data.Description
		rec.Location = e.Data.Location
		rec.Source = store.SourceICS
		rec.UID = e.Data.UID
		if err := s.Persistence.Store(rec); err != nil {
			return res, err
		}
		if rec.UID != "" {
			seen[rec.UID+"@"+day] = true
		}
		res.Added++
	}
	return res, nil
}

func formatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}
