// ABOUTME: Tests for per-day classification tags and grid cell render data
// ABOUTME: Covers today, single selection, range endpoints, in-range days, and min/max bounds

package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/datepick/internal/models"
)

func TestClassify_Today(t *testing.T) {
	tags := Classify(day(time.March, 20), State{Now: fixedNow})
	assert.True(t, tags.Has(TagToday))
	assert.Equal(t, "today", tags.String())

	tags = Classify(day(time.March, 21), State{Now: fixedNow})
	assert.False(t, tags.Has(TagToday))
}

func TestClassify_SingleSelected(t *testing.T) {
	state := State{Value: models.SingleValue(day(time.March, 5)), Now: fixedNow}

	assert.True(t, Classify(day(time.March, 5), state).Has(TagSelected))
	assert.False(t, Classify(day(time.March, 6), state).Has(TagSelected))
	assert.False(t, Classify(day(time.March, 5), State{Now: fixedNow}).Has(TagSelected))
}

func TestClassify_SingleIgnoredInRangeMode(t *testing.T) {
	state := State{Value: models.SingleValue(day(time.March, 5)), RangeMode: true, Now: fixedNow}
	assert.Equal(t, Tags(0), Classify(day(time.March, 5), state))
}

func TestClassify_Range(t *testing.T) {
	state := State{
		Value:     models.RangeValue(ptr(day(time.March, 5)), ptr(day(time.March, 8))),
		RangeMode: true,
		Now:       fixedNow,
	}

	tests := []struct {
		d    int
		want []string
	}{
		{4, []string{}},
		{5, []string{"start-date"}},
		{6, []string{"in-range-date"}},
		{7, []string{"in-range-date"}},
		{8, []string{"end-date"}},
		{9, []string{}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(day(time.March, tc.d), state).Names(), "March %d", tc.d)
	}
}

func TestClassify_SingleDayRange(t *testing.T) {
	state := State{
		Value:     models.RangeValue(ptr(day(time.March, 5)), ptr(day(time.March, 5))),
		RangeMode: true,
		Now:       fixedNow,
	}
	tags := Classify(day(time.March, 5), state)
	assert.True(t, tags.Has(TagRangeStart|TagRangeEnd))
	assert.False(t, tags.Has(TagInRange))
}

func TestClassify_PartialRangeHasNoTags(t *testing.T) {
	state := State{
		Value:     models.RangeValue(ptr(day(time.March, 5)), nil),
		RangeMode: true,
		Now:       fixedNow,
	}
	assert.Equal(t, Tags(0), Classify(day(time.March, 5), state))
}

func TestClassify_DisabledBoundary(t *testing.T) {
	state := State{MinDate: ptr(day(time.March, 10)), MaxDate: ptr(day(time.March, 25)), Now: fixedNow}

	assert.True(t, Classify(day(time.March, 9), state).Has(TagDisabled))
	assert.False(t, Classify(day(time.March, 10), state).Has(TagDisabled))
	assert.False(t, Classify(day(time.March, 25), state).Has(TagDisabled))
	assert.True(t, Classify(day(time.March, 26), state).Has(TagDisabled))
}

func TestClassify_DisabledIndependentOfSelection(t *testing.T) {
	state := State{
		Value:   models.SingleValue(day(time.March, 9)),
		MinDate: ptr(day(time.March, 10)),
		Now:     day(time.March, 9),
	}
	assert.Equal(t, []string{"today", "selected-date", "disabled"}, Classify(day(time.March, 9), state).Names())
}

func TestClassify_MinDateTimeOfDayIgnored(t *testing.T) {
	state := State{MinDate: ptr(time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)), Now: fixedNow}
	assert.False(t, Classify(day(time.March, 10), state).Has(TagDisabled))
}

func TestPicker_IsSelected(t *testing.T) {
	p := newPicker(t, Options{RangeMode: true})
	require.NoError(t, p.SelectDay(day(time.March, 5)))
	require.NoError(t, p.SelectDay(day(time.March, 8)))

	assert.True(t, p.IsSelected(day(time.March, 5)))
	assert.True(t, p.IsSelected(day(time.March, 8)))
	assert.False(t, p.IsSelected(day(time.March, 6)))
}

func TestPicker_MinMaxTruncated(t *testing.T) {
	p := newPicker(t, Options{MinDate: ptr(time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC))})
	assert.False(t, p.IsDisabled(day(time.March, 10)))
	assert.True(t, p.IsDisabled(day(time.March, 9)))
}

func TestPicker_Cells(t *testing.T) {
	p := newPicker(t, Options{MinDate: ptr(day(time.March, 3)), Initial: models.SingleValue(day(time.March, 15))})

	cells := p.Cells()
	require.Len(t, cells, 31)

	assert.Equal(t, 5, cells[0].Weekday)
	assert.True(t, cells[0].Disabled())
	assert.True(t, cells[1].Disabled())
	assert.False(t, cells[2].Disabled())
	assert.True(t, cells[14].Tags.Has(TagSelected))
	assert.True(t, cells[19].Tags.Has(TagToday))
	for i, c := range cells {
		assert.Equal(t, i+1, c.Date.Day())
	}
}

func TestTags_Names(t *testing.T) {
	assert.Equal(t, []string{}, Tags(0).Names())
	all := TagToday | TagSelected | TagRangeStart | TagRangeEnd | TagInRange | TagDisabled
	assert.Equal(t, "today selected-date start-date end-date in-range-date disabled", all.String())
}
