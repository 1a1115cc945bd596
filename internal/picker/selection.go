// ABOUTME: Day click handling for single and range modes plus value writes and clear
// ABOUTME: Every mutation stores a truncated value and notifies value-changed then touched listeners

package picker

import (
	"fmt"
	"time"

	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/models"
)

// Binding is the two-way value contract between a control and its form host.
type Binding interface {
	Value() models.Value
	SetValue(v models.Value)
	OnValueChanged(fn func(models.Value))
	OnTouched(fn func())
}

var _ Binding = (*Picker)(nil)

// OnValueChanged registers fn to run after every value mutation.
func (p *Picker) OnValueChanged(fn func(models.Value)) {
	p.changeListeners = append(p.changeListeners, fn)
}

// OnTouched registers fn to run after every value mutation, following the
// value-changed listeners.
func (p *Picker) OnTouched(fn func()) {
	p.touchListeners = append(p.touchListeners, fn)
}

// Value returns a copy of the stored value.
func (p *Picker) Value() models.Value {
	return p.value.Truncated()
}

// SetValue stores v truncated to day granularity and notifies listeners.
// The next range click sets the start again.
func (p *Picker) SetValue(v models.Value) {
	p.rangeIndex = 0
	p.store(v)
}

// Clear unsets the value and returns range selection to the start slot.
// Listeners fire even when it was already unset.
func (p *Picker) Clear() {
	p.SetValue(models.Value{})
}

// store writes v and notifies listeners without touching the range index.
func (p *Picker) store(v models.Value) {
	p.value = v.Truncated()
	p.logger.Debug("value set", "id", p.id, "value", p.value.String())
	p.notify()
}

func (p *Picker) notify() {
	v := p.Value()
	for _, fn := range p.changeListeners {
		fn(v)
	}
	for _, fn := range p.touchListeners {
		fn()
	}
}

// SelectDay handles a click on a grid day. The stored date is the clicked
// day of month in the displayed month, clamped to the month's last day.
// Days outside MinDate/MaxDate are rejected with ErrDayDisabled and leave
// the state untouched.
func (p *Picker) SelectDay(day time.Time) error {
	target := dateutil.WithDay(p.calendarDate, day.Day())
	if p.IsDisabled(target) {
		return fmt.Errorf("%w: %s", ErrDayDisabled, target.Format("2006-01-02"))
	}

	if p.opts.RangeMode {
		p.selectRange(target)
	} else {
		p.selectSingle(target)
	}
	return nil
}

// selectSingle toggles: clicking the selected day again unsets the value.
func (p *Picker) selectSingle(target time.Time) {
	if dateutil.SameDay(p.value.Date, &target) {
		p.store(models.Value{})
	} else {
		p.store(models.SingleValue(target))
	}
	p.open = false
}

func (p *Picker) selectRange(target time.Time) {
	r := p.value.RangeOrEmpty()
	deselected := false

	if p.rangeIndex == 0 {
		if dateutil.SameDay(r.Start, &target) {
			r = models.Range{}
			deselected = true
		} else {
			r = r.WithStart(&target)
		}
	} else {
		r = r.WithEnd(&target)
	}

	if deselected && p.reselectStart {
		p.rangeIndex = 0
	} else {
		p.rangeIndex = 1 - p.rangeIndex
	}

	p.logger.Debug("range click", "id", p.id, "day", target.Format("2006-01-02"), "next_index", p.rangeIndex)
	p.store(models.Value{Range: &r})
}
