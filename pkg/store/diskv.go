package store

import (
	"context"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
	"github.com/sirupsen/logrus"
)

// Persistence is the event source behind the CLI. The calendar core never
// touches it; commands read records from here and index them.
type Persistence interface {
	ListAll(ctx context.Context) []*Record
	List(ctx context.Context, calendar string) []*Record
	Calendars(ctx context.Context) []string
	Store(r *Record) error
	Delete(r *Record) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      logrus.WithField("component", "store"),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *logrus.Entry
}

func (p *persistence) read(key string) (*Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := &Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	r.ID = pk.FileName
	if r.Calendar == "" {
		r.Calendar = fromCalendar(pk.Path[0])
	}
	return r, nil
}

func (p *persistence) ListAll(ctx context.Context) []*Record {
	all := make([]*Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		r, err := p.read(key)
		if err != nil {
			p.log.WithField("key", key).Warnf("skipping unreadable record: %v", err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all
}

func (p *persistence) List(ctx context.Context, calendar string) []*Record {
	ck := toCalendar(calendar)
	all := make([]*Record, 0)
	for key := range p.d.KeysPrefix(ck+"-", ctx.Done()) {
		r, err := p.read(key)
		if err != nil {
			p.log.WithField("key", key).Warnf("skipping unreadable record: %v", err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all
}

func (p *persistence) Calendars(ctx context.Context) []string {
	seen := make(map[string]struct{})
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		seen[fromCalendar(pk.Path[0])] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *persistence) Store(r *Record) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	if r.Day == "" {
		return errors.New("store: record day required")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Calendar == "" {
		r.Calendar = DefaultCalendar
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := p.d.Write(toKey(r), data); err != nil {
		return fmt.Errorf("store: write %s: %w", r.ID, err)
	}
	p.log.WithFields(logrus.Fields{"id": r.ID, "day": r.Day}).Debug("stored record")
	return nil
}

func (p *persistence) Delete(r *Record) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	return p.d.Erase(toKey(r))
}

func sortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		left, right := records[i], records[j]
		if left.Day != right.Day {
			return left.Day < right.Day
		}
		if !left.Created.Equal(right.Created) {
			return left.Created.Before(right.Created)
		}
		return left.ID < right.ID
	})
}

// Keys look like `calendar-yyyy-MM-dd-id` and fan out into
// calendar/yyyy/MM/dd/id on disk.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	if len(parts) < 5 {
		return &diskv.PathKey{Path: parts[:len(parts)-1], FileName: parts[len(parts)-1]}
	}
	// Record ids are uuids and contain dashes themselves.
	return &diskv.PathKey{
		Path:     parts[:4],
		FileName: strings.Join(parts[4:], "-"),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func toKey(r *Record) string {
	return fmt.Sprintf("%s-%s-%s", toCalendar(r.Calendar), r.Day, r.ID)
}

var calendarEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func toCalendar(s string) string {
	return calendarEncoding.EncodeToString([]byte(s))
}

func fromCalendar(s string) string {
	name, err := calendarEncoding.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromCalendar: %s", err)
	}
	return string(name)
}
