package app

import (
	"context"
	"time"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/store"
)

// AgendaDay groups the records that fall on one day.
type AgendaDay struct {
	Day     time.Time
	Records []store.Record
}

// AgendaResult lists days with records between two days, both inclusive.
type AgendaResult struct {
	From  time.Time
	Until time.Time
	Days  []AgendaDay
	Total int
}

// Agenda returns the records of calendarName (all calendars when empty)
// between from and until, grouped by day in ascending order.
func (s *Service) Agenda(ctx context.Context, calendarName string, from, until time.Time) (AgendaResult, error) {
	if err := s.ready(); err != nil {
		return AgendaResult{}, err
	}
	var err error
	if from, err = calendar.Normalize(from, s.Calendar); err != nil {
		return AgendaResult{}, err
	}
	if until, err = calendar.Normalize(until, s.Calendar); err != nil {
		return AgendaResult{}, err
	}
	if s.Calendar.CompareDay(from, until) > 0 {
		from, until = until, from
	}
	idx, err := s.Index(ctx, calendarName)
	if err != nil {
		return AgendaResult{}, err
	}

	res := AgendaResult{From: from, Until: until}
	for _, day := range idx.Days() {
		if s.Calendar.CompareDay(day, from) < 0 || s.Calendar.CompareDay(day, until) > 0 {
			continue
		}
		events := idx.EventsOn(day)
		records := make([]store.Record, 0, len(events))
		for _, e := range events {
			records = append(records, e.Data)
		}
		res.Days = append(res.Days, AgendaDay{Day: day, Records: records})
		res.Total += len(records)
	}
	return res, nil
}

// MonthAgenda is Agenda over every day of m.
func (s *Service) MonthAgenda(ctx context.Context, calendarName string, m calendar.Month) (AgendaResult, error) {
	days := m.Days()
	if len(days) == 0 {
		return AgendaResult{}, nil
	}
	return s.Agenda(ctx, calendarName, days[0], days[len(days)-1])
}
