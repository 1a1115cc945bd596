// ABOUTME: MCP tool definitions and handlers for calendar grids and selection replay
// ABOUTME: Each call builds a fresh picker, so tools are stateless between requests

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/datepick/internal/config"
	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/models"
	"github.com/harper/datepick/internal/picker"
)

// Type definitions for input/output structures

type MonthGridInput struct {
	Month   *string `json:"month,omitempty"`
	Mode    *string `json:"mode,omitempty"`
	Date    *string `json:"date,omitempty"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
	MinDate *string `json:"min_date,omitempty"`
	MaxDate *string `json:"max_date,omitempty"`
}

type DayOutput struct {
	Date     string   `json:"date"`
	Weekday  string   `json:"weekday"`
	Tags     []string `json:"tags"`
	Disabled bool     `json:"disabled"`
}

type ValueOutput struct {
	Set   bool   `json:"set"`
	Date  string `json:"date,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type MonthGridOutput struct {
	Month         string      `json:"month"`
	MonthName     string      `json:"month_name"`
	Year          int         `json:"year"`
	Mode          string      `json:"mode"`
	LeadingBlanks int         `json:"leading_blanks"`
	Days          []DayOutput `json:"days"`
	Value         ValueOutput `json:"value"`
}

type SelectDaysInput struct {
	Mode          *string  `json:"mode,omitempty"`
	Month         *string  `json:"month,omitempty"`
	Clicks        []string `json:"clicks"`
	MinDate       *string  `json:"min_date,omitempty"`
	MaxDate       *string  `json:"max_date,omitempty"`
	ReselectStart *bool    `json:"reselect_start,omitempty"`
}

type StepOutput struct {
	Click      string      `json:"click"`
	Month      string      `json:"month"`
	Value      ValueOutput `json:"value"`
	RangeIndex int         `json:"range_index"`
	Error      *string     `json:"error,omitempty"`
}

type SelectDaysOutput struct {
	Value      ValueOutput  `json:"value"`
	RangeIndex int          `json:"range_index"`
	Steps      []StepOutput `json:"steps"`
}

// Tool registration

func (s *Server) registerTools() {
	s.registerMonthGridTool()
	s.registerSelectDaysTool()
}

func (s *Server) registerMonthGridTool() {
	tool := mcp.Tool{
		Name:        "month_grid",
		Description: "Render one calendar month as structured data. Returns every day of the month with its weekday and classification tags (today, selected-date, start-date, end-date, in-range-date, disabled), plus the number of leading blank cells in a Sunday-first week grid. Pass a date for single mode, or start/end with mode='range'. Days before min_date or after max_date are tagged disabled.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"month": map[string]interface{}{
					"type":        "string",
					"description": "Month to render as YYYY-MM. Defaults to the current month. Example: '2024-03'",
				},
				"mode": map[string]interface{}{
					"type":        "string",
					"description": "Selection mode: 'single' (default) or 'range'.",
				},
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Selected date in single mode. Accepts YYYY-MM-DD, 'today', 'yesterday', 'tomorrow'.",
				},
				"start": map[string]interface{}{
					"type":        "string",
					"description": "Range start in range mode. Example: '2024-03-05'",
				},
				"end": map[string]interface{}{
					"type":        "string",
					"description": "Range end in range mode. Swapped with start if earlier. Example: '2024-03-10'",
				},
				"min_date": map[string]interface{}{
					"type":        "string",
					"description": "Earliest selectable date. Example: 'today'",
				},
				"max_date": map[string]interface{}{
					"type":        "string",
					"description": "Latest selectable date. Example: '2024-12-31'",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleMonthGrid)
}

func (s *Server) registerSelectDaysTool() {
	tool := mcp.Tool{
		Name:        "select_days",
		Description: "Replay a sequence of calendar interactions and return the resulting value. Each click is a date (the calendar moves to that date's month and clicks the day), or one of 'next', 'prev', 'clear'. In single mode clicking the selected day again deselects it. In range mode clicks alternate between setting the start and the end, and the range is always returned start-before-end. Clicks on disabled days are reported per step and leave the value unchanged.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"mode": map[string]interface{}{
					"type":        "string",
					"description": "Selection mode: 'single' (default) or 'range'.",
				},
				"month": map[string]interface{}{
					"type":        "string",
					"description": "Starting month as YYYY-MM. Defaults to the current month.",
				},
				"clicks": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Ordered interactions. Example: ['2024-03-10', '2024-03-05'] or ['next', '2024-04-02', 'clear']",
				},
				"min_date": map[string]interface{}{
					"type":        "string",
					"description": "Earliest selectable date.",
				},
				"max_date": map[string]interface{}{
					"type":        "string",
					"description": "Latest selectable date.",
				},
				"reselect_start": map[string]interface{}{
					"type":        "boolean",
					"description": "After deselecting a range start, whether the next click selects a new start (default true) or the end.",
				},
			},
			Required: []string{"clicks"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleSelectDays)
}

// Tool handlers

func (s *Server) handleMonthGrid(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input MonthGridInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	now := s.now()
	rangeMode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	opts, err := s.boundOptions(rangeMode, input.MinDate, input.MaxDate, now)
	if err != nil {
		return nil, err
	}

	if rangeMode {
		start, err := optionalDate("start", input.Start, now)
		if err != nil {
			return nil, err
		}
		end, err := optionalDate("end", input.End, now)
		if err != nil {
			return nil, err
		}
		if start != nil || end != nil {
			opts.Initial = models.RangeValue(start, end)
		}
	} else {
		d, err := optionalDate("date", input.Date, now)
		if err != nil {
			return nil, err
		}
		if d != nil {
			opts.Initial = models.SingleValue(*d)
		}
	}

	p, err := picker.New(opts, picker.WithClock(s.now), picker.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create picker: %w", err)
	}
	if err := setMonth(p, input.Month); err != nil {
		return nil, err
	}

	cells := p.Cells()
	days := make([]DayOutput, 0, len(cells))
	for _, c := range cells {
		days = append(days, DayOutput{
			Date:     c.Date.Format(config.DateFormat),
			Weekday:  dateutil.WeekDays[c.Weekday],
			Tags:     c.Tags.Names(),
			Disabled: c.Disabled(),
		})
	}

	output := MonthGridOutput{
		Month:         p.DisplayedMonth().Format(config.MonthFormat),
		MonthName:     p.MonthName(),
		Year:          p.Year(),
		Mode:          modeName(rangeMode),
		LeadingBlanks: dateutil.LeadingBlanks(p.DisplayedMonth()),
		Days:          days,
		Value:         valueOutput(p.Value()),
	}

	return jsonResult(output)
}

func (s *Server) handleSelectDays(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input SelectDaysInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if len(input.Clicks) == 0 {
		return nil, fmt.Errorf("clicks must not be empty")
	}

	now := s.now()
	rangeMode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}
	opts, err := s.boundOptions(rangeMode, input.MinDate, input.MaxDate, now)
	if err != nil {
		return nil, err
	}

	reselect := true
	if input.ReselectStart != nil {
		reselect = *input.ReselectStart
	}

	p, err := picker.New(opts,
		picker.WithClock(s.now),
		picker.WithLogger(s.logger),
		picker.WithReselectStartAfterClear(reselect),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create picker: %w", err)
	}
	if err := setMonth(p, input.Month); err != nil {
		return nil, err
	}

	steps := make([]StepOutput, 0, len(input.Clicks))
	for _, click := range input.Clicks {
		step := StepOutput{Click: click}
		if err := applyClick(p, click, now); err != nil {
			if !errors.Is(err, picker.ErrDayDisabled) && !errors.Is(err, dateutil.ErrInvalidDate) {
				return nil, err
			}
			msg := err.Error()
			step.Error = &msg
		}
		step.Month = p.DisplayedMonth().Format(config.MonthFormat)
		step.Value = valueOutput(p.Value())
		step.RangeIndex = p.RangeIndex()
		steps = append(steps, step)
	}

	output := SelectDaysOutput{
		Value:      valueOutput(p.Value()),
		RangeIndex: p.RangeIndex(),
		Steps:      steps,
	}
	return jsonResult(output)
}

// applyClick performs one scripted interaction on p.
func applyClick(p *picker.Picker, click string, now time.Time) error {
	switch strings.ToLower(strings.TrimSpace(click)) {
	case "next":
		p.Next()
		return nil
	case "prev":
		p.Prev()
		return nil
	case "clear":
		p.Clear()
		return nil
	}

	d, err := dateutil.ParseDate(click, now)
	if err != nil {
		return err
	}
	shown := p.DisplayedMonth()
	if d.Year() != shown.Year() || d.Month() != shown.Month() {
		p.SetMonth(d)
	}
	return p.SelectDay(d)
}

func (s *Server) boundOptions(rangeMode bool, minDate, maxDate *string, now time.Time) (picker.Options, error) {
	opts := picker.Options{Label: config.DefaultLabel, RangeMode: rangeMode}

	var err error
	if opts.MinDate, err = optionalDate("min_date", minDate, now); err != nil {
		return opts, err
	}
	if opts.MaxDate, err = optionalDate("max_date", maxDate, now); err != nil {
		return opts, err
	}
	return opts, nil
}

func setMonth(p *picker.Picker, month *string) error {
	if month == nil || *month == "" {
		return nil
	}
	m, err := dateutil.ParseMonth(*month, p.DisplayedMonth().Location())
	if err != nil {
		return fmt.Errorf("invalid month value: %w", err)
	}
	p.SetMonth(m)
	return nil
}

func optionalDate(field string, s *string, now time.Time) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := dateutil.ParseDate(*s, now)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", field, err)
	}
	return &d, nil
}

func parseMode(mode *string) (bool, error) {
	if mode == nil || *mode == "" {
		return false, nil
	}
	switch strings.ToLower(*mode) {
	case config.ModeSingle:
		return false, nil
	case config.ModeRange:
		return true, nil
	default:
		return false, fmt.Errorf("mode must be 'single' or 'range', got %q", *mode)
	}
}

func modeName(rangeMode bool) string {
	if rangeMode {
		return config.ModeRange
	}
	return config.ModeSingle
}

func valueOutput(v models.Value) ValueOutput {
	// An emptied range still counts as a range value but carries no dates.
	out := ValueOutput{Set: v.IsSet() && !(v.Range != nil && v.Range.IsEmpty())}
	switch {
	case v.Range != nil:
		out.Start = dateutil.FormatDate(v.Range.Start)
		out.End = dateutil.FormatDate(v.Range.End)
	case v.Date != nil:
		out.Date = dateutil.FormatDate(v.Date)
	}
	return out
}

func jsonResult(output interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
