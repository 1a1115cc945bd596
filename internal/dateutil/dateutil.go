// ABOUTME: Calendar arithmetic for the date picker
// ABOUTME: Day truncation, month grids, weekday offsets, and day-granular comparisons

package dateutil

import "time"

// MonthNames lists month names with index 0 = January.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WeekDays lists short weekday names with index 0 = Sunday.
var WeekDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Truncate returns midnight (00:00:00) of t's day in t's location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TruncateTime is Truncate for optional dates. A nil date passes through.
func TruncateTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := Truncate(*t)
	return &d
}

// StartOfToday returns midnight of the current day in local time
func StartOfToday() time.Time {
	return Truncate(time.Now())
}

// StartOfMonth returns midnight of the first day of anchor's month
func StartOfMonth(anchor time.Time) time.Time {
	return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
}

// DayCount returns the number of days in the given month (Gregorian).
func DayCount(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonth returns one truncated date per day of anchor's month, ascending.
func DaysInMonth(anchor time.Time) []time.Time {
	first := StartOfMonth(anchor)
	n := DayCount(first.Year(), first.Month())
	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// WeekdayOffsets returns the weekday index (0 = Sunday) of every day in
// anchor's month, parallel to DaysInMonth.
func WeekdayOffsets(anchor time.Time) []int {
	days := DaysInMonth(anchor)
	offsets := make([]int, len(days))
	for i, d := range days {
		offsets[i] = int(d.Weekday())
	}
	return offsets
}

// LeadingBlanks returns how many empty cells precede day 1 in a
// Sunday-first 7-column grid.
func LeadingBlanks(anchor time.Time) int {
	return int(StartOfMonth(anchor).Weekday())
}

// AddMonths shifts anchor by n calendar months. The day is clamped to the
// length of the target month, so Mar 31 + 1 is Apr 30 rather than May 1.
func AddMonths(anchor time.Time, n int) time.Time {
	first := time.Date(anchor.Year(), anchor.Month()+time.Month(n), 1,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
	day := anchor.Day()
	if last := DayCount(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// WithDay returns anchor's year and month combined with the given day of month, truncated.
// Days past the end of the month clamp to its last day.
func WithDay(anchor time.Time, day int) time.Time {
	if n := DayCount(anchor.Year(), anchor.Month()); day > n {
		day = n
	}
	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
}

// civil drops time-of-day and location so days compare by their calendar fields.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return civil(a).Equal(civil(b))
}

// SameDay reports whether a and b fall on the same year/month/day.
// It is false if either is nil.
func SameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return false
	}
	return sameDay(*a, *b)
}

// IsBeforeDay reports whether a's day is strictly before b's day.
func IsBeforeDay(a, b time.Time) bool {
	return civil(a).Before(civil(b))
}

// IsAfterDay reports whether a's day is strictly after b's day.
func IsAfterDay(a, b time.Time) bool {
	return civil(a).After(civil(b))
}

// IsToday reports whether day falls on the same calendar day as now.
func IsToday(day, now time.Time) bool {
	return sameDay(day, now)
}

// IsStartOfRange reports whether day is the range start. Both endpoints must be set.
func IsStartOfRange(day time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return sameDay(day, *start)
}

// IsEndOfRange reports whether day is the range end. Both endpoints must be set.
func IsEndOfRange(day time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return sameDay(day, *end)
}

// IsWithinRange reports whether day lies strictly between start and end.
func IsWithinRange(day time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return IsAfterDay(day, *start) && IsBeforeDay(day, *end)
}
