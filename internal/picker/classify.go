// ABOUTME: Per-day classification tags (today, selected, range start/end/inside, disabled)
// ABOUTME: Pure function of the day and picker state; hosts map tags to styles and click gating

package picker

import (
	"strings"
	"time"

	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/models"
)

// Tags is a set of classification tags for one day cell.
type Tags uint8

const (
	TagToday Tags = 1 << iota
	TagSelected
	TagRangeStart
	TagRangeEnd
	TagInRange
	TagDisabled
)

var tagNames = []struct {
	tag  Tags
	name string
}{
	{TagToday, "today"},
	{TagSelected, "selected-date"},
	{TagRangeStart, "start-date"},
	{TagRangeEnd, "end-date"},
	{TagInRange, "in-range-date"},
	{TagDisabled, "disabled"},
}

// Has reports whether every tag in want is present.
func (t Tags) Has(want Tags) bool {
	return t&want == want
}

// Names returns the tag names in a fixed order.
func (t Tags) Names() []string {
	names := []string{}
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			names = append(names, tn.name)
		}
	}
	return names
}

func (t Tags) String() string {
	return strings.Join(t.Names(), " ")
}

// State is the input to Classify.
type State struct {
	Value     models.Value
	RangeMode bool
	MinDate   *time.Time
	MaxDate   *time.Time
	Now       time.Time
}

// Classify returns the tags for day under state.
func Classify(day time.Time, state State) Tags {
	var tags Tags

	if dateutil.IsToday(day, state.Now) {
		tags |= TagToday
	}

	if state.RangeMode {
		r := state.Value.RangeOrEmpty()
		if r.IsStart(day) {
			tags |= TagRangeStart
		}
		if r.IsEnd(day) {
			tags |= TagRangeEnd
		}
		if r.Within(day) {
			tags |= TagInRange
		}
	} else if dateutil.SameDay(&day, state.Value.Date) {
		tags |= TagSelected
	}

	if isDisabled(day, state.MinDate, state.MaxDate) {
		tags |= TagDisabled
	}
	return tags
}

func isDisabled(day time.Time, minDate, maxDate *time.Time) bool {
	if minDate != nil && dateutil.IsBeforeDay(day, *minDate) {
		return true
	}
	return maxDate != nil && dateutil.IsAfterDay(day, *maxDate)
}

// Cell is the render data for one grid day.
type Cell struct {
	Date    time.Time
	Weekday int
	Tags    Tags
}

// Disabled reports whether the cell should not accept clicks.
func (c Cell) Disabled() bool {
	return c.Tags.Has(TagDisabled)
}

func (p *Picker) state() State {
	return State{
		Value:     p.value,
		RangeMode: p.opts.RangeMode,
		MinDate:   p.opts.MinDate,
		MaxDate:   p.opts.MaxDate,
		Now:       p.now(),
	}
}

// Classify returns the tags for day against the current state.
func (p *Picker) Classify(day time.Time) Tags {
	return Classify(day, p.state())
}

// IsSelected reports whether day is the selected date or a range endpoint.
func (p *Picker) IsSelected(day time.Time) bool {
	tags := p.Classify(day)
	return tags.Has(TagSelected) || tags.Has(TagRangeStart) || tags.Has(TagRangeEnd)
}

// IsDisabled reports whether day falls outside MinDate/MaxDate.
func (p *Picker) IsDisabled(day time.Time) bool {
	return isDisabled(day, p.opts.MinDate, p.opts.MaxDate)
}

// Cells returns render data for every day of the displayed month.
func (p *Picker) Cells() []Cell {
	state := p.state()
	cells := make([]Cell, len(p.days))
	for i, d := range p.days {
		cells[i] = Cell{Date: d, Weekday: p.offsets[i], Tags: Classify(d, state)}
	}
	return cells
}
