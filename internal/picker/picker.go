// ABOUTME: Date picker state: displayed month, stored value, range endpoint index, open state
// ABOUTME: Hosts drive it with navigation and day clicks and render its grid and classifications

package picker

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/models"
)

var (
	// ErrLabelRequired is returned by New when Options.Label is empty.
	ErrLabelRequired = errors.New("attribute label required")

	// ErrDayDisabled is returned by SelectDay for days outside MinDate/MaxDate.
	ErrDayDisabled = errors.New("day is disabled")
)

// Direction is a month navigation direction.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Options configures a Picker. Label is required; everything else is optional.
type Options struct {
	Label       string
	Placeholder string
	RangeMode   bool
	MinDate     *time.Time
	MaxDate     *time.Time
	ShowInput   bool
	ShowLabel   bool
	Initial     models.Value
}

// Option customizes a Picker beyond its display Options.
type Option func(*Picker)

// WithClock replaces time.Now, used for "today" and the initial displayed month.
func WithClock(now func() time.Time) Option {
	return func(p *Picker) {
		p.now = now
	}
}

// WithLogger routes state transition debug logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Picker) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithReselectStartAfterClear controls the endpoint index after a range start
// is deselected. When true (the default) the next click selects a new start.
// When false the index flips to the end slot like any other click.
func WithReselectStartAfterClear(reselect bool) Option {
	return func(p *Picker) {
		p.reselectStart = reselect
	}
}

// Picker is a calendar bound to a single-date or date-range value.
// It is not safe for concurrent use.
type Picker struct {
	id            string
	opts          Options
	now           func() time.Time
	logger        *log.Logger
	reselectStart bool

	calendarDate time.Time
	days         []time.Time
	offsets      []int

	value      models.Value
	rangeIndex int
	open       bool

	changeListeners []func(models.Value)
	touchListeners  []func()
}

// New validates opts and returns a Picker showing the current month.
func New(opts Options, options ...Option) (*Picker, error) {
	if opts.Label == "" {
		return nil, ErrLabelRequired
	}

	p := &Picker{
		id:            uuid.New().String(),
		opts:          opts,
		now:           time.Now,
		logger:        log.New(io.Discard),
		reselectStart: true,
	}
	for _, o := range options {
		o(p)
	}

	p.opts.MinDate = dateutil.TruncateTime(opts.MinDate)
	p.opts.MaxDate = dateutil.TruncateTime(opts.MaxDate)
	p.value = opts.Initial.Truncated()
	p.SetMonth(dateutil.Truncate(p.now()))

	p.logger.Debug("picker initialized", "id", p.id, "range", opts.RangeMode, "month", p.calendarDate.Format("2006-01"))
	return p, nil
}

// ID returns the instance identifier.
func (p *Picker) ID() string {
	return p.id
}

// SetMonth displays the month containing anchor.
func (p *Picker) SetMonth(anchor time.Time) {
	p.calendarDate = anchor
	p.days = dateutil.DaysInMonth(anchor)
	p.offsets = dateutil.WeekdayOffsets(anchor)
}

// Navigate shifts the displayed month by exactly one calendar month.
// The stored value is not touched.
func (p *Picker) Navigate(dir Direction) {
	p.SetMonth(dateutil.AddMonths(p.calendarDate, int(dir)))
	p.logger.Debug("navigate", "id", p.id, "month", p.calendarDate.Format("2006-01"))
}

// Prev shows the previous month.
func (p *Picker) Prev() {
	p.Navigate(Prev)
}

// Next shows the following month.
func (p *Picker) Next() {
	p.Navigate(Next)
}

// DisplayedMonth returns the anchor date of the displayed month.
func (p *Picker) DisplayedMonth() time.Time {
	return p.calendarDate
}

// MonthName returns the displayed month's name.
func (p *Picker) MonthName() string {
	return dateutil.MonthNames[p.calendarDate.Month()-1]
}

// Year returns the displayed month's year.
func (p *Picker) Year() int {
	return p.calendarDate.Year()
}

// Days returns the grid of the displayed month. The slice is a copy.
func (p *Picker) Days() []time.Time {
	return append([]time.Time(nil), p.days...)
}

// WeekdayOffsets returns the weekday index of each grid day. The slice is a copy.
func (p *Picker) WeekdayOffsets() []int {
	return append([]int(nil), p.offsets...)
}

// RangeIndex returns which range slot the next click sets (0 = start, 1 = end).
func (p *Picker) RangeIndex() int {
	return p.rangeIndex
}

// Open shows the transient picker UI.
func (p *Picker) Open() {
	p.open = true
}

// Toggle flips the transient picker UI.
func (p *Picker) Toggle() {
	p.open = !p.open
}

// Dismiss closes the transient picker UI. Hosts call it when interaction
// leaves the control (outside click, focus loss).
func (p *Picker) Dismiss() {
	p.open = false
}

// IsOpen reports whether the transient picker UI is showing.
func (p *Picker) IsOpen() bool {
	return p.open
}

// Label returns the label shown above the control.
func (p *Picker) Label() string { return p.opts.Label }

// Placeholder returns the text shown while no value is set.
func (p *Picker) Placeholder() string { return p.opts.Placeholder }

// RangeMode reports whether the picker selects a date range.
func (p *Picker) RangeMode() bool { return p.opts.RangeMode }

// ShowInput reports whether hosts should offer a typed date input.
func (p *Picker) ShowInput() bool { return p.opts.ShowInput }

// ShowLabel reports whether hosts should render the label.
func (p *Picker) ShowLabel() bool { return p.opts.ShowLabel }

// Display returns the value as text, or the placeholder when unset.
func (p *Picker) Display() string {
	if s := p.value.String(); s != "" {
		return s
	}
	return p.opts.Placeholder
}
