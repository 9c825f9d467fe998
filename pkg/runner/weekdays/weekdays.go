// Package weekdays provides the runner that shows the weekday columns.
package weekdays

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/printers"
)

// Weekdays prints the localized weekday symbols in column order.
type Weekdays struct {
	Calendar calendar.Calendar
	JSON     bool
	Out      io.Writer
}

type symbolJSON struct {
	Column  int    `json:"column"`
	Symbol  string `json:"symbol"`
	Weekend bool   `json:"weekend"`
}

// Do renders the weekday table.
func (k *Weekdays) Do(_ context.Context) error {
	if k.Calendar == nil {
		return errors.New("can not list weekdays, no calendar")
	}
	symbols, err := calendar.LocalizedWeekdaySymbols(k.Calendar)
	if err != nil {
		return err
	}
	if k.JSON {
		out := make([]symbolJSON, 0, len(symbols))
		for i, s := range symbols {
			out = append(out, symbolJSON{Column: i + 1, Symbol: s.Symbol, Weekend: s.IsWeekend})
		}
		return printers.JSON(k.Out, out)
	}
	pp := printers.PrettyPrint{Out: k.Out}
	pp.Weekdays(symbols)
	return nil
}
