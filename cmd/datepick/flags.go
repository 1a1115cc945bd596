// ABOUTME: Picker flags shared by the pick and month commands
// ABOUTME: Merges flag overrides onto the loaded config and builds a picker from the result

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/datepick/internal/config"
	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/models"
	"github.com/harper/datepick/internal/picker"
)

// rangeSeparator splits a range value flag: 2024-03-05..2024-03-10
const rangeSeparator = ".."

func addPickerFlags(cmd *cobra.Command) {
	cmd.Flags().String("label", "", "picker label (overrides config)")
	cmd.Flags().String("placeholder", "", "text shown while nothing is selected")
	cmd.Flags().BoolP("range", "r", false, "select a date range instead of a single date")
	cmd.Flags().String("min", "", "earliest selectable date (YYYY-MM-DD or today)")
	cmd.Flags().String("max", "", "latest selectable date (YYYY-MM-DD or today)")
	cmd.Flags().String("value", "", "initial value: a date, or start..end in range mode")
	cmd.Flags().String("month", "", "month to display (YYYY-MM, default: current month)")
}

// mergeFlags returns a copy of base with any explicitly set flags applied.
func mergeFlags(cmd *cobra.Command, base *config.Config) *config.Config {
	merged := *base
	flags := cmd.Flags()

	if flags.Changed("label") {
		merged.Label, _ = flags.GetString("label")
	}
	if flags.Changed("placeholder") {
		merged.Placeholder, _ = flags.GetString("placeholder")
	}
	if flags.Changed("range") {
		merged.Range, _ = flags.GetBool("range")
	}
	if flags.Changed("min") {
		merged.MinDate, _ = flags.GetString("min")
	}
	if flags.Changed("max") {
		merged.MaxDate, _ = flags.GetString("max")
	}
	if flags.Changed("show-input") {
		merged.ShowInput, _ = flags.GetBool("show-input")
	}
	return &merged
}

// buildPicker creates a picker from the loaded config and the command's flags.
func buildPicker(cmd *cobra.Command, now func() time.Time) (*picker.Picker, error) {
	c := mergeFlags(cmd, cfg)
	opts, err := c.PickerOptions(now())
	if err != nil {
		return nil, err
	}

	valueStr, _ := cmd.Flags().GetString("value")
	if valueStr != "" {
		opts.Initial, err = parseValue(valueStr, opts.RangeMode, now())
		if err != nil {
			return nil, err
		}
	}

	p, err := picker.New(opts, picker.WithClock(now), picker.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	monthStr, _ := cmd.Flags().GetString("month")
	if monthStr != "" {
		m, err := dateutil.ParseMonth(monthStr, now().Location())
		if err != nil {
			return nil, fmt.Errorf("invalid --month: %w", err)
		}
		p.SetMonth(m)
	}
	return p, nil
}

// parseValue parses a --value flag. Range values use start..end, where either side may be empty.
func parseValue(s string, rangeMode bool, now time.Time) (models.Value, error) {
	if !rangeMode {
		d, err := dateutil.ParseDate(s, now)
		if err != nil {
			return models.Value{}, fmt.Errorf("invalid --value: %w", err)
		}
		return models.SingleValue(d), nil
	}

	startStr, endStr, found := strings.Cut(s, rangeSeparator)
	if !found {
		return models.Value{}, fmt.Errorf("invalid --value %q: range values look like start..end", s)
	}

	start, err := parseRangeSide(startStr, now)
	if err != nil {
		return models.Value{}, err
	}
	end, err := parseRangeSide(endStr, now)
	if err != nil {
		return models.Value{}, err
	}
	return models.RangeValue(start, end), nil
}

func parseRangeSide(s string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := dateutil.ParseDate(s, now)
	if err != nil {
		return nil, fmt.Errorf("invalid --value: %w", err)
	}
	return &d, nil
}
