// ABOUTME: lipgloss styles shared by the setup wizard and the calendar view
// ABOUTME: Maps picker classification tags onto day cell styles

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/datepick/internal/picker"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)

	monthStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	dayStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	todayStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	selectedStyle  = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("99")).Foreground(lipgloss.Color("15"))
	inRangeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("60")).Foreground(lipgloss.Color("15"))
	disabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// styleFor picks the style of a day cell. Later checks win.
func styleFor(tags picker.Tags, cursor bool) lipgloss.Style {
	style := dayStyle
	if tags.Has(picker.TagToday) {
		style = todayStyle
	}
	if tags.Has(picker.TagInRange) {
		style = inRangeStyle
	}
	if tags.Has(picker.TagSelected) || tags.Has(picker.TagRangeStart) || tags.Has(picker.TagRangeEnd) {
		style = selectedStyle
	}
	if tags.Has(picker.TagDisabled) {
		style = disabledStyle
	}
	if cursor {
		style = cursorStyle
	}
	return style
}
