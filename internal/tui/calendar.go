// ABOUTME: Interactive bubbletea calendar that hosts a date picker in the terminal
// ABOUTME: Translates keys into navigation and day clicks, renders the grid from picker classifications

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harper/datepick/internal/config"
	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/models"
	"github.com/harper/datepick/internal/picker"
)

// KeyMap holds the calendar key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Select    key.Binding
	Clear     key.Binding
	Input     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default calendar bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		Select:    key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Input:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "type date")),
		Quit:      key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// PickerModel is the bubbletea model for the calendar.
type PickerModel struct {
	picker      *picker.Picker
	keys        KeyMap
	now         func() time.Time
	cursor      time.Time
	input       textinput.Model
	inputActive bool
	status      string
	done        bool
	quitting    bool
}

// NewPickerModel wraps p and opens it. The cursor starts on the selected date
// (or range start) when it lies in the displayed month, otherwise on the
// displayed month's anchor day.
func NewPickerModel(p *picker.Picker, now func() time.Time) PickerModel {
	if now == nil {
		now = time.Now
	}
	input := textinput.New()
	input.Placeholder = p.Placeholder()
	input.Width = 20

	p.Open()
	return PickerModel{
		picker: p,
		keys:   DefaultKeyMap(),
		now:    now,
		cursor: initialCursor(p),
		input:  input,
	}
}

func initialCursor(p *picker.Picker) time.Time {
	month := p.DisplayedMonth()
	v := p.Value()
	candidate := v.Date
	if v.Range != nil {
		candidate = v.Range.Start
	}
	if candidate != nil && candidate.Year() == month.Year() && candidate.Month() == month.Month() {
		return dateutil.Truncate(*candidate)
	}
	return dateutil.Truncate(month)
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BlurMsg:
		m.picker.Dismiss()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			m.picker.Dismiss()
			return m, tea.Quit
		}
		if m.inputActive {
			return m.updateInput(msg)
		}
		if !m.picker.IsOpen() {
			if key.Matches(msg, m.keys.Quit) {
				m.quitting = true
				return m, tea.Quit
			}
			m.picker.Open()
			return m, nil
		}
		return m.updateCalendar(msg)
	default:
		if m.inputActive {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m PickerModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.picker.Dismiss()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.picker.Prev()
		m.cursor = dateutil.AddMonths(m.cursor, -1)
	case key.Matches(msg, m.keys.NextMonth):
		m.picker.Next()
		m.cursor = dateutil.AddMonths(m.cursor, 1)
	case key.Matches(msg, m.keys.Clear):
		m.picker.Clear()
	case key.Matches(msg, m.keys.Input):
		if m.picker.ShowInput() {
			m.inputActive = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Select):
		return m.selectCursor()
	}
	return m, nil
}

func (m PickerModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.inputActive = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		d, err := dateutil.ParseDate(m.input.Value(), m.now())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.inputActive = false
		m.input.Blur()
		m.picker.SetMonth(d)
		m.cursor = d
		return m.selectCursor()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveCursor moves the cursor by days, following it into the adjacent month.
func (m *PickerModel) moveCursor(days int) {
	next := m.cursor.AddDate(0, 0, days)
	shown := m.picker.DisplayedMonth()
	if next.Year() != shown.Year() || next.Month() != shown.Month() {
		if next.Before(m.cursor) {
			m.picker.Prev()
		} else {
			m.picker.Next()
		}
	}
	m.cursor = next
}

func (m PickerModel) selectCursor() (tea.Model, tea.Cmd) {
	if err := m.picker.SelectDay(m.cursor); err != nil {
		if errors.Is(err, picker.ErrDayDisabled) {
			m.status = fmt.Sprintf("%s is outside the allowed dates", m.cursor.Format(config.DateFormat))
			return m, nil
		}
		m.status = err.Error()
		return m, nil
	}

	v := m.picker.Value()
	if m.picker.RangeMode() {
		if v.Range != nil && v.Range.IsComplete() && m.picker.RangeIndex() == 0 {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}
	if v.IsSet() {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	if m.picker.ShowLabel() {
		b.WriteString(titleStyle.Render(m.picker.Label()))
		b.WriteString("\n")
	}

	if m.inputActive {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(promptStyle.Render("[ ") + m.picker.Display() + promptStyle.Render(" ]"))
	}
	b.WriteString("\n")

	if m.picker.IsOpen() {
		b.WriteString(boxStyle.Render(m.renderGrid()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.helpLine()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m PickerModel) renderGrid() string {
	var b strings.Builder
	width := config.CellWidth * 7

	header := fmt.Sprintf("‹ %s %d ›", m.picker.MonthName(), m.picker.Year())
	pad := (width - len([]rune(header))) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(monthStyle.Render(header))
	b.WriteString("\n")

	for _, wd := range dateutil.WeekDays {
		b.WriteString(dayHeaderStyle.Render(fmt.Sprintf("%*s", config.CellWidth, wd)))
	}
	b.WriteString("\n")

	cells := m.picker.Cells()
	if len(cells) == 0 {
		return b.String()
	}
	b.WriteString(strings.Repeat(" ", config.CellWidth*cells[0].Weekday))

	pending := m.pendingStart()
	for _, c := range cells {
		tags := c.Tags
		if pending != nil && dateutil.SameDay(pending, &c.Date) {
			tags |= picker.TagRangeStart
		}
		isCursor := dateutil.SameDay(&m.cursor, &c.Date)
		b.WriteString(styleFor(tags, isCursor).Render(fmt.Sprintf("%*d", config.CellWidth, c.Date.Day())))
		if c.Weekday == 6 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// pendingStart returns the range start while the end is still unset, so the
// view can highlight it before the range is complete.
func (m PickerModel) pendingStart() *time.Time {
	if !m.picker.RangeMode() {
		return nil
	}
	r := m.picker.Value().RangeOrEmpty()
	if r.Start != nil && r.End == nil {
		return r.Start
	}
	return nil
}

func (m PickerModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.Left, m.keys.Right, m.keys.PrevMonth, m.keys.NextMonth, m.keys.Select, m.keys.Clear,
	}
	if m.picker.ShowInput() {
		bindings = append(bindings, m.keys.Input)
	}
	bindings = append(bindings, m.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Cursor returns the day under the cursor.
func (m PickerModel) Cursor() time.Time {
	return m.cursor
}

// Result returns the picker value and whether the user completed a selection.
func (m PickerModel) Result() (models.Value, bool) {
	return m.picker.Value(), m.done && !m.quitting
}
