// Package month provides the runner that prints a single month.
package month

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/printers"
)

// Month prints the grid for one month, or the month containing Now when
// Year is zero.
type Month struct {
	Service  *app.Service
	Calendar string
	Year     int
	Month    int
	Long     bool
	JSON     bool
	Out      io.Writer
	Now      time.Time
}

// Do renders the month.
func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Calendar == nil {
		return errors.New("can not print month, no calendar")
	}
	cal := n.Service.Calendar
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	var (
		m   calendar.Month
		err error
	)
	if n.Year == 0 {
		m, err = calendar.BuildMonthFor(now, cal)
	} else {
		m, err = calendar.BuildMonth(n.Year, n.Month, cal)
	}
	if err != nil {
		return err
	}

	idx, err := n.Service.Index(ctx, n.Calendar)
	if err != nil {
		return err
	}

	if n.JSON {
		view, err := printers.NewMonthJSON(m, idx)
		if err != nil {
			return err
		}
		return printers.JSON(n.Out, view)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.Long {
		return pp.MonthLong(m, idx, now)
	}
	return pp.Month(m, idx, now)
}

// ParseYearMonth reads "YYYY-MM" or "YYYY-M".
func ParseYearMonth(s string) (year, month int, err error) {
	s = strings.TrimSpace(s)
	var rest string
	if n, _ := fmt.Sscanf(s, "%d-%d%s", &year, &month, &rest); n < 2 || rest != "" {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q: month %d out of range", s, month)
	}
	return year, month, nil
}
