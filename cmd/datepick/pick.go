// ABOUTME: Pick command launching the interactive calendar TUI
// ABOUTME: Prints the selected date or range to stdout so it can be used in scripts

package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/datepick/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:     "pick",
	Aliases: []string{"p"},
	Short:   "Pick a date interactively",
	Long: `Open an interactive calendar and print the selection.

Single mode prints YYYY-MM-DD. Range mode prints "START - END".
Nothing is printed when the picker is dismissed without a selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPicker(cmd, time.Now)
		if err != nil {
			return err
		}

		model := tui.NewPickerModel(p, time.Now)
		program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithReportFocus())
		result, err := program.Run()
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		final := result.(tui.PickerModel)
		value, ok := final.Result()
		if !ok {
			fmt.Fprintln(os.Stderr, "Selection canceled.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), value.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)

	addPickerFlags(pickCmd)
	pickCmd.Flags().Bool("show-input", false, "enable the inline date input (press /)")
}
