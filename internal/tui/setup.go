// ABOUTME: Interactive TUI wizard for configuring the default date picker
// ABOUTME: 2-step bubbletea model collecting the picker label and selection mode

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harper/datepick/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepLabel Step = iota
	StepMode
	StepDone
)

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	inputs   [2]textinput.Model
	quitting bool
}

// NewSetupModel creates a new setup wizard model, pre-filling with existing config values.
func NewSetupModel(label, mode string) SetupModel {
	labelInput := textinput.New()
	labelInput.Placeholder = config.DefaultLabel
	labelInput.Focus()
	labelInput.Width = 40
	if label != "" {
		labelInput.SetValue(label)
	}

	modeInput := textinput.New()
	modeInput.Placeholder = config.ModeSingle
	modeInput.Width = 40
	if mode != "" {
		modeInput.SetValue(mode)
	}

	return SetupModel{
		step:   StepLabel,
		inputs: [2]textinput.Model{labelInput, modeInput},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

		if m.step == StepLabel || m.step == StepMode {
			return m.updateInput(msg)
		}
	default:
		// Forward other messages (e.g. cursor blink) to the active input
		if m.step == StepLabel || m.step == StepMode {
			idx := int(m.step)
			var cmd tea.Cmd
			m.inputs[idx], cmd = m.inputs[idx].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}

	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	idx := int(m.step)

	switch m.step {
	case StepLabel:
		val := strings.TrimSpace(m.inputs[0].Value())
		if val == "" {
			val = config.DefaultLabel
		}
		m.inputs[0].SetValue(val)
	case StepMode:
		val := strings.ToLower(strings.TrimSpace(m.inputs[1].Value()))
		if val == "" {
			val = config.ModeSingle
		}
		if val != config.ModeSingle && val != config.ModeRange {
			return m, nil
		}
		m.inputs[1].SetValue(val)
	}

	m.inputs[idx].Blur()

	switch m.step {
	case StepLabel:
		m.step = StepMode
		m.inputs[1].Focus()
		return m, textinput.Blink
	case StepMode:
		m.step = StepDone
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   DATEPICK"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Configure the default date picker.\n\n")

	switch m.step {
	case StepLabel:
		b.WriteString(stepStyle.Render("Step 1 of 2: Label"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(press Enter for default: %s)", config.DefaultLabel)))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepMode:
		b.WriteString(fmt.Sprintf("  Label: %s\n\n", m.inputs[0].Value()))
		b.WriteString(stepStyle.Render("Step 2 of 2: Selection Mode"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(single or range, press Enter for default)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("Setup complete, config saved."))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Label: %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  Mode:  %s\n", m.inputs[1].Value()))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values.
func (m SetupModel) Result() (label, mode string) {
	return m.inputs[0].Value(), m.inputs[1].Value()
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
