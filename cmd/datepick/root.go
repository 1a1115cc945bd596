// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads configuration and sets up the verbose logger before any subcommand runs

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/datepick/internal/config"
)

var (
	cfgPath string
	verbose bool
	cfg     *config.Config
	logger  *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "datepick",
	Short: "Terminal date and date-range picker",
	Long: `
██████╗  █████╗ ████████╗███████╗██████╗ ██╗ ██████╗██╗  ██╗
██╔══██╗██╔══██╗╚══██╔══╝██╔════╝██╔══██╗██║██╔════╝██║ ██╔╝
██║  ██║███████║   ██║   █████╗  ██████╔╝██║██║     █████╔╝
██║  ██║██╔══██║   ██║   ██╔══╝  ██╔═══╝ ██║██║     ██╔═██╗
██████╔╝██║  ██║   ██║   ███████╗██║     ██║╚██████╗██║  ██╗
╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚══════╝╚═╝     ╚═╝ ╚═════╝╚═╝  ╚═╝

Pick a date or a date range from a calendar in your terminal.

Print month grids, script selections, and expose the calendar via MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.New(os.Stderr)
		logger.SetPrefix("datepick")
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		var err error
		if cfgPath != "" {
			cfg, err = config.LoadFrom(cfgPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debug("config loaded", "label", cfg.GetLabel(), "mode", cfg.GetMode())
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default: ~/.config/datepick/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log picker state transitions to stderr")
}
