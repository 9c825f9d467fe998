package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sirupsen/logrus"

	"tableflip.dev/calendarlist/pkg/app"
	"tableflip.dev/calendarlist/pkg/calendar"
	"tableflip.dev/calendarlist/pkg/event"
	"tableflip.dev/calendarlist/pkg/store"
	"tableflip.dev/calendarlist/pkg/ui/monthview"
	"tableflip.dev/calendarlist/pkg/ui/theme"
	"tableflip.dev/calendarlist/pkg/window"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

const dayTitle = "Monday, January 2, 2006"

// event item for the day list
type eventItem struct{ r store.Record }

func (it eventItem) Title() string { return it.r.Title }
func (it eventItem) Description() string {
	if it.r.Location != "" {
		return it.r.Calendar + " @ " + it.r.Location
	}
	return it.r.Calendar
}
func (it eventItem) FilterValue() string { return it.r.Title }

// Model contains UI state
type Model struct {
	svc      *app.Service
	ctx      context.Context
	calendar string

	state window.State
	index *event.Index[store.Record]
	now   func() time.Time

	mode   mode
	list   list.Model
	input  textinput.Model
	status string

	theme theme.Theme
	opts  monthview.Options

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int
}

// New creates a UI model showing the months around now. calendarName limits
// the events shown; empty shows every calendar.
func New(svc *app.Service, calendarName string, now func() time.Time) (Model, error) {
	if svc == nil || svc.Calendar == nil {
		return Model{}, errors.New("teaui: no calendar configured")
	}
	if now == nil {
		now = time.Now
	}
	state, err := window.NewState(now(), svc.Calendar)
	if err != nil {
		return Model{}, err
	}

	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	l := list.New([]list.Item{}, d, 60, 10)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "New event title"
	ti.CharLimit = 256
	ti.Prompt = ""

	th := theme.Default()
	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		calendar: calendarName,
		state:    state,
		now:      now,
		mode:     modeNormal,
		list:     l,
		input:    ti,
		status:   "h/l months, arrows move, t today, o add, x delete, ? help, q quit",
		theme:    th,
		opts:     monthview.DefaultOptions(th),
	}
	m.syncList()
	return m, nil
}

// Init loads initial data
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadIndex(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) loadIndex() tea.Cmd {
	svc, ctx, name := m.svc, m.ctx, m.calendar
	return func() tea.Msg {
		idx, err := svc.Index(ctx, name)
		if err != nil {
			return errMsg{err}
		}
		return indexLoadedMsg{idx}
	}
}

// messages
type errMsg struct{ err error }
type indexLoadedMsg struct{ index *event.Index[store.Record] }

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case indexLoadedMsg:
		m.index = msg.index
		m.syncList()
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		ev := msg.event
		logrus.WithField("component", "tea").Debugf("store changed: %s %s %s", ev.Type, ev.Calendar, ev.Day)
		if m.calendar == "" || ev.Calendar == "" || ev.Calendar == m.calendar {
			cmds = append(cmds, m.loadIndex())
			if day, err := time.ParseInLocation(time.DateOnly, ev.Day, m.svc.Calendar.Location()); err == nil {
				m.status = "Synced " + day.Format(dayTitle)
			}
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			switch msg.String() {
			case "q", "esc", "?":
				m.mode = modeNormal
			}
		case modeInsert:
			m.handleInsertKey(msg, &cmds)
		case modeNormal:
			m.handleNormalKey(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		day, ok := m.state.Selected.Get()
		if title != "" && ok {
			if _, err := m.svc.Add(m.ctx, m.calendar, day, title); err != nil {
				*cmds = append(*cmds, errCmd(err))
			} else {
				m.status = "Added"
				*cmds = append(*cmds, m.loadIndex())
			}
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = "Add cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.stopWatch()
		*cmds = append(*cmds, tea.Quit)

	// month paging
	case "h", "[", "pgup":
		m.apply(window.PageChanged{Index: 0})
	case "l", "]", "pgdown":
		m.apply(window.PageChanged{Index: 2})
	case "t":
		m.apply(window.Today{Now: m.now()})

	// day selection
	case "left":
		m.moveSelection(-1)
	case "right":
		m.moveSelection(1)
	case "up":
		m.moveSelection(-7)
	case "down":
		m.moveSelection(7)

	// events of the selected day
	case "j":
		m.list.CursorDown()
	case "k":
		m.list.CursorUp()
	case "o", "a":
		if _, ok := m.state.Selected.Get(); ok {
			m.mode = modeInsert
			m.input.SetValue("")
			if cmd := m.input.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			*cmds = append(*cmds, textinput.Blink)
		}
	case "x":
		if it := m.currentEvent(); it != nil {
			if err := m.svc.Delete(m.ctx, it.r.ID); err != nil {
				*cmds = append(*cmds, errCmd(err))
			} else {
				m.status = "Deleted"
				*cmds = append(*cmds, m.loadIndex())
			}
		}
	case "r":
		*cmds = append(*cmds, m.loadIndex())
	case "?":
		m.mode = modeHelp
	}
}

// apply runs a window transition; on failure the state is left untouched.
func (m *Model) apply(msg window.Msg) {
	next, err := m.state.Apply(msg)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.state = next
	m.syncList()
	m.applySizes()
}

// moveSelection moves the selected day, following it into the neighbouring
// month when it leaves the current one.
func (m *Model) moveSelection(days int) {
	cal := m.svc.Calendar
	from, ok := m.state.Selected.Get()
	if !ok {
		from = m.state.Window.Current().Anchor
	}
	target, err := calendar.Normalize(from.AddDate(0, 0, days), cal)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}

	next, err := m.state.Apply(window.Select{Date: target})
	if err == nil && !next.Window.Current().Contains(target) {
		dir := window.Forward
		if cal.CompareDay(target, next.Window.Current().Anchor) < 0 {
			dir = window.Backward
		}
		next, err = next.Apply(window.Step{Direction: dir})
	}
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.state = next
	m.syncList()
	m.applySizes()
}

func (m *Model) syncList() {
	day, ok := m.state.Selected.Get()
	if !ok {
		m.list.Title = "No day selected"
		m.list.SetItems(nil)
		return
	}
	m.list.Title = day.Format(dayTitle)
	events := m.index.EventsOn(day)
	items := make([]list.Item, 0, len(events))
	for _, e := range events {
		items = append(items, eventItem{r: e.Data})
	}
	m.list.SetItems(items)
}

func (m *Model) currentEvent() *eventItem {
	if len(m.list.Items()) == 0 {
		return nil
	}
	sel := m.list.SelectedItem()
	if sel == nil {
		return nil
	}
	it, ok := sel.(eventItem)
	if !ok {
		return nil
	}
	return &it
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

// View renders the three months, the selected day's events and the status.
func (m Model) View() string {
	slots := m.state.Window.Slots()
	blocks := make([]string, 0, len(slots))
	for i, month := range slots {
		block, err := m.renderMonth(month)
		if err != nil {
			return "ERR: " + err.Error()
		}
		style := m.theme.Calendar.Blurred
		if i == window.CenterIndex {
			style = m.theme.Calendar.Focused
		}
		blocks = append(blocks, style.Render(block))
	}
	months := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	current := m.state.Window.Current()
	prev := m.theme.Footer.Help.Render("◀ h")
	next := m.theme.Footer.Help.Render("l ▶")
	nav := lipgloss.PlaceHorizontal(lipgloss.Width(months), lipgloss.Center,
		prev+"  "+m.theme.Calendar.Title.Render(current.Title())+"  "+next)

	body := lipgloss.JoinVertical(lipgloss.Left, nav, months, "", m.list.View())

	if it := m.currentEvent(); it != nil && it.r.Notes != "" {
		width := lipgloss.Width(months)
		if width < 20 {
			width = 20
		}
		body += "\n" + m.theme.Footer.Help.Render(wordwrap.String(it.r.Notes, width))
	}
	if m.mode == modeInsert {
		body += "\n\nAdd: " + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: h/[ previous month, l/] next month, t today, arrows move the selected day, j/k move in events, o add, x delete, r reload, q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeHelp: "HELP"}[m.mode]
	status := m.theme.Footer.Status
	if strings.HasPrefix(m.status, "ERR:") {
		status = m.theme.Footer.Error
	}
	return body + "\n\n" + status.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))
}

func (m Model) renderMonth(month calendar.Month) (string, error) {
	days := monthview.Annotate(month, m.index, m.now(), m.state.Selected)
	busiest := 0
	counts := make(map[int]int, len(days))
	for _, d := range month.Days() {
		n := len(m.index.EventsOn(d))
		counts[month.Calendar().Components(d).Day] = n
		if n > busiest {
			busiest = n
		}
	}
	for i := range days {
		days[i].Heat = m.theme.HeatColor(counts[days[i].Day], busiest)
	}
	return monthview.Render(month, days, m.opts)
}

// Run starts the program.
func Run(svc *app.Service, calendarName string) error {
	m, err := New(svc, calendarName, nil)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// Week rows of the current month plus title, header and borders.
	calendarHeight := m.state.Window.Rows() + 4
	// Navigation line, blank line and the status footer.
	height := m.termHeight - calendarHeight - 4
	if height < 3 {
		height = 3
	}
	width := m.termWidth - 2
	if width < 20 {
		width = 20
	}
	m.list.SetSize(width, height)
}
