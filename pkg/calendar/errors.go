package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is wrapped by ConfigError when a calendar cannot construct
// a date from its components.
var ErrInvalidDate = errors.New("calendar: invalid date components")

// ConfigError reports an inconsistent calendar configuration. It is not a
// recoverable condition: the caller asked for a date the calendar claims
// exists but cannot build.
type ConfigError struct {
	Year  int
	Month int
	Day   int
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("calendar: cannot construct %04d-%02d-%02d: %v", e.Year, e.Month, e.Day, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configError(year, month, day int, err error) error {
	if err == nil {
		err = ErrInvalidDate
	}
	return &ConfigError{Year: year, Month: month, Day: day, Err: err}
}

// asConfigError wraps err from an injected calendar so construction
// failures always surface as *ConfigError.
func asConfigError(year, month, day int, err error) error {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return err
	}
	return configError(year, month, day, err)
}
