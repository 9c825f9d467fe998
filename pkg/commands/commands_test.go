package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"tableflip.dev/calendarlist/pkg/store"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestSubcommands(t *testing.T) {
	cmd := New()
	want := []string{"month", "year", "weekdays", "add", "events", "import", "ui", "info", "version", "completion"}
	for _, name := range want {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Fatalf("expected subcommand %s, got %v (%v)", name, found, err)
		}
	}
	for _, flag := range []string{"locale", "first-weekday", "timezone", "date-format", "log-level"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("expected persistent flag --%s", flag)
		}
	}
}

func TestAddStoresEvent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CALENDARLIST_PATH", dir)
	t.Setenv("CALENDARLIST_CONFIG_PATH", dir)

	if err := run(t, "add", "team", "offsite", "--on=2024-12-31", "--format=yyyy-MM-dd", "--calendar=work", "--json"); err != nil {
		t.Fatalf("add: %v", err)
	}

	cfg, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	records := p.List(context.Background(), "work")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != "team offsite" || records[0].Day != "2024-12-31" {
		t.Fatalf("unexpected record %+v", records[0])
	}
}

func TestAddRequiresTitle(t *testing.T) {
	t.Setenv("CALENDARLIST_PATH", t.TempDir())
	if err := run(t, "add"); err == nil {
		t.Fatal("expected error without a title")
	}
}

func TestMonthRejectsBadArg(t *testing.T) {
	t.Setenv("CALENDARLIST_PATH", t.TempDir())
	if err := run(t, "month", "2024-13"); err == nil {
		t.Fatal("expected error for month 13")
	}
}

func TestBadLogLevel(t *testing.T) {
	t.Setenv("CALENDARLIST_PATH", t.TempDir())
	if err := run(t, "weekdays", "--log-level=loud"); err == nil {
		t.Fatal("expected error for an unknown log level")
	}
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("CALENDARLIST_PATH", t.TempDir())
	t.Setenv("CALENDARLIST_LOG_LEVEL", "loud")
	if err := run(t, "weekdays"); err == nil {
		t.Fatal("expected error for an unknown log level in the environment")
	}
}

func TestLogLevelFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CALENDARLIST_PATH", dir)
	t.Setenv("CALENDARLIST_CONFIG_PATH", dir)
	if err := os.WriteFile(filepath.Join(dir, ".calendarlist.yaml"), []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	level := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetLevel(level)
		// viper remembers the config file it found.
		viper.Reset()
	})

	if err := run(t, "weekdays"); err != nil {
		t.Fatalf("weekdays: %v", err)
	}
	if got := logrus.GetLevel(); got != logrus.DebugLevel {
		t.Fatalf("expected debug level from the config file, got %s", got)
	}
}
