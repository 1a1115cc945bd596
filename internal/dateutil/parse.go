// ABOUTME: Date and month string parsing for host inputs (flags, TUI input, MCP arguments)
// ABOUTME: Accepts relative names like "today" plus a fixed list of common layouts

package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when no supported layout matches the input.
var ErrInvalidDate = errors.New("invalid date")

// Order matters: ISO first so "2024-03-05" never lands on a US layout.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"20060102",
}

var monthLayouts = []string{
	"2006-01",
	"January 2006",
	"Jan 2006",
	"01/2006",
}

// ParseDate parses s as a calendar date in now's location. Besides the
// fixed layouts it accepts "today", "yesterday" and "tomorrow" relative to now.
// The result is always truncated to midnight.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "today", "t":
		return Truncate(now), nil
	case "yesterday":
		return Truncate(now).AddDate(0, 0, -1), nil
	case "tomorrow":
		return Truncate(now).AddDate(0, 0, 1), nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return Truncate(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
}

// ParseMonth parses s as a month and returns midnight of its first day in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range monthLayouts {
		if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
			return StartOfMonth(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: month %q (expected YYYY-MM)", ErrInvalidDate, s)
}

// FormatDate renders a date as YYYY-MM-DD, or "" when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
