package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCalendar is the calendar records land in when none is named.
const DefaultCalendar = "personal"

// Source values for Record.Source.
const (
	SourceManual = "manual"
	SourceICS    = "ics"
)

// Record is a stored event. Day is "yyyy-MM-dd" so records do not move
// between days when the configured timezone changes.
type Record struct {
	ID       string    `json:"id"`
	Calendar string    `json:"calendar"`
	Day      string    `json:"day"`
	Title    string    `json:"title"`
	Notes    string    `json:"notes,omitempty"`
	Location string    `json:"location,omitempty"`
	Source   string    `json:"source,omitempty"`
	UID      string    `json:"uid,omitempty"`
	Created  time.Time `json:"created"`
}

// NewRecord returns a manual record with a fresh id.
func NewRecord(calendarName, day, title string) *Record {
	calendarName = strings.TrimSpace(calendarName)
	if calendarName == "" {
		calendarName = DefaultCalendar
	}
	return &Record{
		ID:       uuid.NewString(),
		Calendar: calendarName,
		Day:      day,
		Title:    strings.TrimSpace(title),
		Source:   SourceManual,
		Created:  time.Now().UTC(),
	}
}
