package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/timeutil"
)

// Config keys shared with command-line flag bindings.
const (
	KeyPath         = "path"
	KeyLocale       = "locale"
	KeyFirstWeekday = "first_weekday"
	KeyTimezone     = "timezone"
	KeyDateFormat   = "date_format"
	KeyLogLevel     = "log.level"
)

// Config is what the CLI needs to open the event store and build a calendar.
type Config interface {
	BasePath() string
	Settings() Settings
}

// Settings are the calendar presentation settings.
type Settings struct {
	Locale       string `json:"locale"`
	FirstWeekday int    `json:"first_weekday"`
	Timezone     string `json:"timezone"`
	DateFormat   string `json:"date_format"`
	LogLevel     string `json:"log_level"`
}

// Calendar builds the Gregorian calendar described by s.
func (s Settings) Calendar() (*calendar.Gregorian, error) {
	locale, err := calendar.LookupLocale(s.Locale)
	if err != nil {
		return nil, err
	}
	loc := time.Local
	if s.Timezone != "" {
		if loc, err = time.LoadLocation(s.Timezone); err != nil {
			return nil, fmt.Errorf("store: load timezone %q: %w", s.Timezone, err)
		}
	}
	return calendar.NewGregorian(
		calendar.WithLocale(locale),
		calendar.WithFirstWeekday(s.FirstWeekday),
		calendar.WithLocation(loc),
	)
}

// Pattern is the configured event date pattern.
func (s Settings) Pattern() string {
	if s.DateFormat == "" {
		return timeutil.DefaultPattern
	}
	return s.DateFormat
}

// LoadConfig reads .calendarlist from $CALENDARLIST_CONFIG_PATH, the working
// directory or $HOME, then the CALENDARLIST_* environment.
func LoadConfig() (Config, error) {
	viper.SetDefault(KeyPath, "~/.calendarlist.db")
	viper.SetDefault(KeyLocale, "en")
	viper.SetDefault(KeyFirstWeekday, 0)
	viper.SetDefault(KeyDateFormat, timeutil.DefaultPattern)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetConfigName(".calendarlist") // .yaml is implicit
	viper.SetEnvPrefix("CALENDARLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("CALENDARLIST_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	} else {
		logrus.WithField("component", "store").Debugf("using config %s", viper.ConfigFileUsed())
	}

	path, err := homedir.Expand(viper.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path: path,
		Calendar: Settings{
			Locale:       viper.GetString(KeyLocale),
			FirstWeekday: viper.GetInt(KeyFirstWeekday),
			Timezone:     viper.GetString(KeyTimezone),
			DateFormat:   viper.GetString(KeyDateFormat),
			LogLevel:     viper.GetString(KeyLogLevel),
		},
	}, nil
}

type fileConfig struct {
	Path     string   `json:"path"`
	Calendar Settings `json:"calendar"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Settings() Settings {
	return f.Calendar
}
