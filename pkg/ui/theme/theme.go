// Package theme centralizes Lip Gloss styles for the terminal views.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme groups the styles used by the month grid and the UI chrome.
type Theme struct {
	Calendar CalendarTheme
	Footer   FooterTheme
	// Heat is the lightest and densest color of the busy-day scale.
	Heat [2]colorful.Color
}

// CalendarTheme styles a single month grid.
type CalendarTheme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Weekend  lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme, picking the palette for the
// terminal background.
func Default() Theme {
	return New(termenv.HasDarkBackground())
}

// New returns the theme for a dark or light background.
func New(dark bool) Theme {
	fg, dim, accent := "15", "244", "63"
	heat := [2]string{"#3b4252", "#88c0d0"}
	if !dark {
		fg, dim, accent = "0", "245", "27"
		heat = [2]string{"#e5e9f0", "#5e81ac"}
	}
	lo, _ := colorful.Hex(heat[0])
	hi, _ := colorful.Hex(heat[1])

	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Theme{
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(fg)),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Weekend:  lipgloss.NewStyle().Foreground(lipgloss.Color("174")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color(accent)).Foreground(lipgloss.Color("0")),
			Focused:  border.BorderForeground(lipgloss.Color(accent)),
			Blurred:  border.BorderForeground(lipgloss.Color("238")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Heat: [2]colorful.Color{lo, hi},
	}
}

// HeatColor returns the hex color for count events on a day, scaled against
// the busiest day max.
func (t Theme) HeatColor(count, max int) string {
	if count <= 0 || max <= 0 {
		return ""
	}
	if count > max {
		count = max
	}
	return t.Heat[0].BlendLab(t.Heat[1], float64(count)/float64(max)).Clamped().Hex()
}
