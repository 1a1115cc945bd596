// ABOUTME: Value model for the date picker: unset, a single date, or a date range
// ABOUTME: Range updates are pure functions returning a new Range, dates are always day-truncated

package models

import (
	"time"

	"github.com/harper/datepick/internal/dateutil"
)

// Range is a two-endpoint selection. Either endpoint may be nil while the
// range is being built. Once both are set, Start is never after End.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// NewRange returns a truncated, normalized range.
func NewRange(start, end *time.Time) Range {
	return Range{
		Start: dateutil.TruncateTime(start),
		End:   dateutil.TruncateTime(end),
	}.Normalize()
}

// IsComplete reports whether both endpoints are set.
func (r Range) IsComplete() bool {
	return r.Start != nil && r.End != nil
}

// IsEmpty reports whether neither endpoint is set.
func (r Range) IsEmpty() bool {
	return r.Start == nil && r.End == nil
}

// Normalize swaps the endpoints when Start is after End.
func (r Range) Normalize() Range {
	if r.IsComplete() && dateutil.IsAfterDay(*r.Start, *r.End) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// WithStart returns a range starting at start with the end discarded.
// A new start always invalidates the old end.
func (r Range) WithStart(start *time.Time) Range {
	return Range{Start: dateutil.TruncateTime(start)}
}

// WithEnd returns a copy of r with End set to end, normalized.
func (r Range) WithEnd(end *time.Time) Range {
	return Range{Start: r.Start, End: dateutil.TruncateTime(end)}.Normalize()
}

// IsStart reports whether day is the start of a complete range.
func (r Range) IsStart(day time.Time) bool {
	return dateutil.IsStartOfRange(day, r.Start, r.End)
}

// IsEnd reports whether day is the end of a complete range.
func (r Range) IsEnd(day time.Time) bool {
	return dateutil.IsEndOfRange(day, r.Start, r.End)
}

// Within reports whether day lies strictly inside a complete range.
func (r Range) Within(day time.Time) bool {
	return dateutil.IsWithinRange(day, r.Start, r.End)
}

// openEnd stands in for an endpoint that is still unset.
const openEnd = "…"

// String renders "start - end", with an ellipsis for a missing endpoint.
func (r Range) String() string {
	if r.IsEmpty() {
		return ""
	}
	start, end := dateutil.FormatDate(r.Start), dateutil.FormatDate(r.End)
	if start == "" {
		start = openEnd
	}
	if end == "" {
		end = openEnd
	}
	return start + " - " + end
}

// Value is what a picker stores and emits. The zero Value is unset.
// At most one of Date and Range is non-nil.
type Value struct {
	Date  *time.Time
	Range *Range
}

// SingleValue returns a single-date value.
func SingleValue(d time.Time) Value {
	t := dateutil.Truncate(d)
	return Value{Date: &t}
}

// RangeValue returns a range value; endpoints may be nil.
func RangeValue(start, end *time.Time) Value {
	r := NewRange(start, end)
	return Value{Range: &r}
}

// IsSet reports whether v holds a date or a range (even a partial one).
func (v Value) IsSet() bool {
	return v.Date != nil || v.Range != nil
}

// IsRange reports whether v holds a range.
func (v Value) IsRange() bool {
	return v.Range != nil
}

// RangeOrEmpty returns v's range, or an empty range when v is not a range.
func (v Value) RangeOrEmpty() Range {
	if v.Range == nil {
		return Range{}
	}
	return *v.Range
}

// Truncated returns v with every date truncated to midnight and the range normalized.
func (v Value) Truncated() Value {
	switch {
	case v.Range != nil:
		return RangeValue(v.Range.Start, v.Range.End)
	case v.Date != nil:
		return SingleValue(*v.Date)
	default:
		return Value{}
	}
}

// Equal reports whether v and o hold the same calendar days.
func (v Value) Equal(o Value) bool {
	if v.IsRange() != o.IsRange() {
		return false
	}
	if v.IsRange() {
		return sameOptional(v.Range.Start, o.Range.Start) && sameOptional(v.Range.End, o.Range.End)
	}
	return sameOptional(v.Date, o.Date)
}

func sameOptional(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return dateutil.SameDay(a, b)
}

func (v Value) String() string {
	switch {
	case v.Range != nil:
		return v.Range.String()
	case v.Date != nil:
		return dateutil.FormatDate(v.Date)
	default:
		return ""
	}
}
