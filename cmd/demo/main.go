package main

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/store"
)

// demo seeds a handful of events around today into the configured store.
var demo = []struct {
	calendar string
	offset   int
	title    string
}{
	{"personal", 0, "Coffee with Sam"},
	{"personal", 2, "Dentist"},
	{"work", -3, "Sprint review"},
	{"work", 1, "Planning"},
	{"work", 1, "1:1"},
	{"work", 14, "Offsite"},
	{"personal", -20, "Birthday dinner"},
	{"personal", 35, "Flight home"},
}

func main() {
	cfg, err := store.LoadConfig()
	if err != nil {
		panic(err)
	}
	cal, err := cfg.Settings().Calendar()
	if err != nil {
		panic(err)
	}
	p, err := store.Load(cfg)
	if err != nil {
		panic(err)
	}
	svc := &app.Service{Persistence: p, Calendar: cal, Pattern: cfg.Settings().Pattern()}

	ctx := context.Background()
	now := time.Now()
	for _, d := range demo {
		if _, err := svc.Add(ctx, d.calendar, now.AddDate(0, 0, d.offset), d.title); err != nil {
			panic(err)
		}
	}

	for _, r := range p.ListAll(ctx) {
		fmt.Printf("%s  %-8s  %s\n", r.Day, r.Calendar, r.Title)
	}
}
