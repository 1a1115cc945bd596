// ABOUTME: Cobra command for interactive datepick configuration.
// ABOUTME: Launches a bubbletea TUI wizard to choose the default label and mode.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/datepick/internal/config"
	"github.com/harper/datepick/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the default picker",
	Long:  "Interactive wizard to configure the default picker label and selection mode.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	model := tui.NewSetupModel(cfg.Label, cfg.GetMode())

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup canceled.")
		return nil
	}

	label, mode := final.Result()
	cfg.Label = label
	cfg.Range = mode == config.ModeRange

	path := cfgPath
	if path == "" {
		path = config.GetConfigPath()
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Config saved to %s\n", path)
	return nil
}
