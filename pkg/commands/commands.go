package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/commands/options"
	"tableflip.dev/calendarlist/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "calendarlist",
		Short: base.Wrap80("Month calendars and day events on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSettingsFlags(cmd)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addMonth(topLevel)
	addYear(topLevel)
	addWeekdays(topLevel)
	addAdd(topLevel)
	addEvents(topLevel)
	addImport(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// addSettingsFlags exposes the calendar settings as persistent flags that
// override the config file and environment.
func addSettingsFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("locale", "", "Locale for month and weekday names, example: --locale=de.")
	f.Int("first-weekday", 0, "First column of the week, 1 = Sunday ... 7 = Saturday. 0 uses the locale default.")
	f.String("timezone", "", "IANA timezone days are computed in, example: --timezone=Europe/Berlin.")
	f.String("date-format", "", `Date pattern for event dates, example: --date-format="dd.MM.yyyy".`)
	f.String("log-level", "", "Log level: debug, info, warn or error.")

	for key, flag := range map[string]string{
		store.KeyLocale:       "locale",
		store.KeyFirstWeekday: "first-weekday",
		store.KeyTimezone:     "timezone",
		store.KeyDateFormat:   "date-format",
		store.KeyLogLevel:     "log-level",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}
}

func setupLogging() error {
	color.NoColor = color.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	// The config file and environment have to be read before the level is.
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	level := cfg.Settings().LogLevel
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// loadService opens the configured store and builds the calendar.
func loadService() (store.Config, *app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	settings := cfg.Settings()
	cal, err := settings.Calendar()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	logrus.WithField("component", "commands").Debugf("store at %s, locale %s", cfg.BasePath(), cal.Language())
	return cfg, &app.Service{Persistence: p, Calendar: cal, Pattern: settings.Pattern()}, nil
}
