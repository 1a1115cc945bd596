// ABOUTME: Tests for date and month string parsing
// ABOUTME: Covers relative names, supported layouts, and rejection of bad input

package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", date(2024, time.March, 15)},
		{"Today", date(2024, time.March, 15)},
		{"yesterday", date(2024, time.March, 14)},
		{"tomorrow", date(2024, time.March, 16)},
		{"2024-03-05", date(2024, time.March, 5)},
		{" 2024-03-05 ", date(2024, time.March, 5)},
		{"2024/03/05", date(2024, time.March, 5)},
		{"03/05/2024", date(2024, time.March, 5)},
		{"3/5/2024", date(2024, time.March, 5)},
		{"20240305", date(2024, time.March, 5)},
	}

	for _, tc := range tests {
		got, err := ParseDate(tc.input, now)
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, expected %v", tc.input, got, tc.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"", "next week", "2024-13-01", "2024-02-30"} {
		_, err := ParseDate(input, now)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, expected ErrInvalidDate", input, err)
		}
	}
}

func TestParseMonth(t *testing.T) {
	for _, input := range []string{"2024-03", "March 2024", "Mar 2024", "03/2024"} {
		got, err := ParseMonth(input, time.UTC)
		if err != nil {
			t.Errorf("ParseMonth(%q) unexpected error: %v", input, err)
			continue
		}
		if !got.Equal(date(2024, time.March, 1)) {
			t.Errorf("ParseMonth(%q) = %v, expected 2024-03-01", input, got)
		}
	}

	if _, err := ParseMonth("march", time.UTC); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for bare month name, got %v", err)
	}
}

func TestFormatDate(t *testing.T) {
	if FormatDate(nil) != "" {
		t.Error("expected empty string for nil date")
	}
	d := date(2024, time.March, 5)
	if got := FormatDate(&d); got != "2024-03-05" {
		t.Errorf("FormatDate = %q, expected 2024-03-05", got)
	}
}
