// ABOUTME: Tests for calendar arithmetic helpers
// ABOUTME: Verifies month grids, weekday offsets, truncation, and range predicates

package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time {
	return &t
}

func TestTruncate(t *testing.T) {
	in := time.Date(2024, time.March, 15, 14, 30, 12, 99, time.UTC)
	got := Truncate(in)
	if !got.Equal(date(2024, time.March, 15)) {
		t.Errorf("Truncate(%v) = %v, expected midnight", in, got)
	}
}

func TestTruncateTime_Nil(t *testing.T) {
	if got := TruncateTime(nil); got != nil {
		t.Errorf("TruncateTime(nil) = %v, expected nil", got)
	}
}

func TestTruncateTime_AlreadyMidnight(t *testing.T) {
	in := date(2024, time.March, 15)
	got := TruncateTime(&in)
	if got == nil || !got.Equal(in) {
		t.Errorf("TruncateTime(%v) = %v, expected identity", in, got)
	}
}

func TestStartOfToday(t *testing.T) {
	result := StartOfToday()
	now := time.Now()

	if result.Year() != now.Year() || result.Month() != now.Month() || result.Day() != now.Day() {
		t.Errorf("StartOfToday() date mismatch: got %v, expected date %v", result, now)
	}
	if result.Hour() != 0 || result.Minute() != 0 || result.Second() != 0 {
		t.Errorf("StartOfToday() should be midnight, got %v", result)
	}
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2024, time.February, 29, 18, 45, 0, 0, time.UTC))
	if !got.Equal(date(2024, time.February, 1)) {
		t.Errorf("expected 2024-02-01, got %v", got)
	}
}

func TestDaysInMonth_Lengths(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tc := range tests {
		days := DaysInMonth(date(tc.year, tc.month, 17))
		if len(days) != tc.want {
			t.Errorf("DaysInMonth(%d-%02d) length = %d, expected %d", tc.year, tc.month, len(days), tc.want)
			continue
		}
		if DayCount(tc.year, tc.month) != tc.want {
			t.Errorf("DayCount(%d, %v) = %d, expected %d", tc.year, tc.month, DayCount(tc.year, tc.month), tc.want)
		}
		for i, d := range days {
			if d.Day() != i+1 || d.Month() != tc.month || d.Hour() != 0 {
				t.Errorf("DaysInMonth(%d-%02d)[%d] = %v", tc.year, tc.month, i, d)
			}
		}
	}
}

func TestDaysInMonth_AllMonths(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for m := time.January; m <= time.December; m++ {
			anchor := date(year, m, 1)
			days := DaysInMonth(anchor)
			want := anchor.AddDate(0, 1, -1).Day()
			if len(days) != want {
				t.Fatalf("DaysInMonth(%d-%02d) length = %d, expected %d", year, m, len(days), want)
			}
			offsets := WeekdayOffsets(anchor)
			if offsets[0] != int(anchor.Weekday()) {
				t.Fatalf("WeekdayOffsets(%d-%02d)[0] = %d, expected %d", year, m, offsets[0], anchor.Weekday())
			}
			if LeadingBlanks(anchor) != offsets[0] {
				t.Fatalf("LeadingBlanks(%d-%02d) = %d, expected %d", year, m, LeadingBlanks(anchor), offsets[0])
			}
		}
	}
}

func TestWeekdayOffsets_March2024(t *testing.T) {
	// March 1, 2024 was a Friday
	offsets := WeekdayOffsets(date(2024, time.March, 20))
	if len(offsets) != 31 {
		t.Fatalf("expected 31 offsets, got %d", len(offsets))
	}
	if offsets[0] != 5 {
		t.Errorf("expected first offset 5 (Friday), got %d", offsets[0])
	}
	if offsets[2] != 0 {
		t.Errorf("expected March 3 to be Sunday (0), got %d", offsets[2])
	}
}

func TestWithDay(t *testing.T) {
	tests := []struct {
		anchor time.Time
		day    int
		want   time.Time
	}{
		{time.Date(2024, time.March, 20, 15, 0, 0, 0, time.UTC), 5, date(2024, time.March, 5)},
		{date(2024, time.February, 1), 31, date(2024, time.February, 29)},
		{date(2023, time.February, 1), 30, date(2023, time.February, 28)},
		{date(2024, time.April, 1), 31, date(2024, time.April, 30)},
	}

	for _, tc := range tests {
		if got := WithDay(tc.anchor, tc.day); !got.Equal(tc.want) {
			t.Errorf("WithDay(%v, %d) = %v, expected %v", tc.anchor, tc.day, got, tc.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		n      int
		want   time.Time
	}{
		{"next", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"clamp end of month", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"prev clamp leap", date(2024, time.March, 31), -1, date(2024, time.February, 29)},
		{"year rollover", date(2024, time.December, 31), 1, date(2025, time.January, 31)},
		{"year rollback", date(2024, time.January, 10), -1, date(2023, time.December, 10)},
		{"zero", date(2024, time.June, 6), 0, date(2024, time.June, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AddMonths(tc.anchor, tc.n)
			if !got.Equal(tc.want) {
				t.Errorf("AddMonths(%v, %d) = %v, expected %v", tc.anchor, tc.n, got, tc.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.March, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	c := date(2025, time.March, 15)

	if !SameDay(&a, &a) {
		t.Error("expected a date to be the same day as itself")
	}
	if !SameDay(&a, &b) {
		t.Error("expected time-of-day to be ignored")
	}
	if SameDay(&a, &c) {
		t.Error("expected different years to differ")
	}
	if SameDay(nil, &a) || SameDay(&a, nil) || SameDay(nil, nil) {
		t.Error("expected nil dates to never match")
	}
}

func TestIsBeforeAfterDay(t *testing.T) {
	morning := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC)
	next := date(2024, time.March, 11)

	if IsBeforeDay(morning, evening) || IsAfterDay(evening, morning) {
		t.Error("same-day times must not be ordered")
	}
	if !IsBeforeDay(evening, next) {
		t.Error("expected March 10 before March 11")
	}
	if !IsAfterDay(next, morning) {
		t.Error("expected March 11 after March 10")
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)
	if !IsToday(date(2024, time.March, 10), now) {
		t.Error("expected same day to be today")
	}
	if IsToday(date(2024, time.March, 11), now) {
		t.Error("expected next day not to be today")
	}
}

func TestRangePredicates(t *testing.T) {
	start := ptr(date(2024, time.March, 5))
	end := ptr(date(2024, time.March, 10))

	tests := []struct {
		day                 time.Time
		isStart, isEnd, mid bool
	}{
		{date(2024, time.March, 4), false, false, false},
		{date(2024, time.March, 5), true, false, false},
		{date(2024, time.March, 6), false, false, true},
		{date(2024, time.March, 9), false, false, true},
		{date(2024, time.March, 10), false, true, false},
		{date(2024, time.March, 11), false, false, false},
	}

	for _, tc := range tests {
		if got := IsStartOfRange(tc.day, start, end); got != tc.isStart {
			t.Errorf("IsStartOfRange(%v) = %v, expected %v", tc.day, got, tc.isStart)
		}
		if got := IsEndOfRange(tc.day, start, end); got != tc.isEnd {
			t.Errorf("IsEndOfRange(%v) = %v, expected %v", tc.day, got, tc.isEnd)
		}
		if got := IsWithinRange(tc.day, start, end); got != tc.mid {
			t.Errorf("IsWithinRange(%v) = %v, expected %v", tc.day, got, tc.mid)
		}
	}
}

func TestRangePredicates_PartialRange(t *testing.T) {
	day := date(2024, time.March, 5)
	set := ptr(day)

	if IsStartOfRange(day, set, nil) || IsEndOfRange(day, nil, set) || IsWithinRange(day, set, nil) {
		t.Error("expected predicates to be false with an unset endpoint")
	}
	if IsStartOfRange(day, nil, nil) {
		t.Error("expected predicates to be false with no range")
	}
}

func TestNameTables(t *testing.T) {
	if MonthNames[0] != "January" || MonthNames[11] != "December" {
		t.Errorf("unexpected month table: %v", MonthNames)
	}
	if WeekDays[0] != "Sun" || WeekDays[6] != "Sat" {
		t.Errorf("unexpected weekday table: %v", WeekDays)
	}
}
