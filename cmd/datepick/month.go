// ABOUTME: Month command printing a calendar grid with color-coded day classifications
// ABOUTME: Optional --click flags replay day clicks through the picker before printing

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/datepick/internal/config"
	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/picker"
)

var monthCmd = &cobra.Command{
	Use:     "month",
	Aliases: []string{"cal", "m"},
	Short:   "Print a month calendar",
	Long: `Print a month grid with today, the selection, and disabled days highlighted.

Each --click selects a day the way a click on the calendar would, so
--range --click 2024-03-10 --click 2024-03-05 prints the range 03-05 to 03-10.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPicker(cmd, time.Now)
		if err != nil {
			return err
		}

		clicks, _ := cmd.Flags().GetStringArray("click")
		for _, click := range clicks {
			d, err := dateutil.ParseDate(click, time.Now())
			if err != nil {
				return fmt.Errorf("invalid --click: %w", err)
			}
			if d.Year() != p.Year() || d.Month() != p.DisplayedMonth().Month() {
				p.SetMonth(d)
			}
			if err := p.SelectDay(d); err != nil {
				if errors.Is(err, picker.ErrDayDisabled) {
					logger.Warn("click ignored", "err", err)
					continue
				}
				return err
			}
		}

		renderMonth(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)

	addPickerFlags(monthCmd)
	monthCmd.Flags().StringArray("click", nil, "select a day (repeatable)")
}

// dayColor returns the color for a classified day, or nil for plain days.
func dayColor(tags picker.Tags) *color.Color {
	switch {
	case tags.Has(picker.TagDisabled):
		return color.New(color.Faint, color.CrossedOut)
	case tags.Has(picker.TagSelected), tags.Has(picker.TagRangeStart), tags.Has(picker.TagRangeEnd):
		return color.New(color.BgMagenta, color.FgHiWhite, color.Bold)
	case tags.Has(picker.TagInRange):
		return color.New(color.BgBlue, color.FgHiWhite)
	case tags.Has(picker.TagToday):
		return color.New(color.FgCyan, color.Bold, color.Underline)
	}
	return nil
}

// renderMonth writes p's displayed month as a Sunday-first grid followed by the value.
func renderMonth(w io.Writer, p *picker.Picker) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	width := config.CellWidth * 7
	title := fmt.Sprintf("%s %d", p.MonthName(), p.Year())
	pad := (width - len(title)) / 2
	if p.ShowLabel() {
		fmt.Fprintln(w, bold(p.Label()))
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), bold(title))

	for _, wd := range dateutil.WeekDays {
		fmt.Fprint(w, faint(fmt.Sprintf("%*s", config.CellWidth, wd)))
	}
	fmt.Fprintln(w)

	cells := p.Cells()
	if len(cells) > 0 {
		fmt.Fprint(w, strings.Repeat(" ", config.CellWidth*cells[0].Weekday))
	}
	for i, c := range cells {
		text := fmt.Sprintf("%*d", config.CellWidth, c.Date.Day())
		if col := dayColor(c.Tags); col != nil {
			text = col.Sprint(text)
		}
		fmt.Fprint(w, text)
		if c.Weekday == 6 || i == len(cells)-1 {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "\n%s %s\n", faint("Value:"), p.Display())
}
