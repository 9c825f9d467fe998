package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calendarlist/pkg/store"
)

// PrettyPrint writes human readable, colored output.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

const idWidth = len("c0ffee00-0000-4000-8000-000000000000")

var spacing = strings.Repeat(" ", idWidth+2)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Records prints one row per record.
func (pp *PrettyPrint) Records(records ...store.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	c := color.New(color.FgCyan)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, r := range records {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(r.ID))
		}
		loc := ""
		if r.Location != "" {
			loc = f.Sprint("@ " + r.Location)
		}
		row = append(row, c.Sprint(r.Calendar), r.Title, loc)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
