// ABOUTME: Configuration for datepick hosts: label, placeholder, mode, and date bounds
// ABOUTME: Stored as JSON under the XDG config directory and converted into picker options

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	"github.com/harper/datepick/internal/dateutil"
	"github.com/harper/datepick/internal/picker"
)

// Config stores datepick configuration.
type Config struct {
	// Label is shown above the calendar and required by the picker.
	Label string `json:"label,omitempty"`

	// Placeholder is shown in the input while no date is selected.
	Placeholder string `json:"placeholder,omitempty"`

	// Range selects date-range mode instead of single-date mode.
	Range bool `json:"range,omitempty"`

	// MinDate and MaxDate bound selectable days. Any format accepted by
	// dateutil.ParseDate, including "today".
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`

	// ShowInput enables the inline date input in the TUI.
	ShowInput bool `json:"show_input,omitempty"`

	// ShowLabel defaults to true when omitted.
	ShowLabel *bool `json:"show_label,omitempty"`
}

// GetLabel returns the configured label, defaulting to DefaultLabel.
func (c *Config) GetLabel() string {
	if c.Label == "" {
		return DefaultLabel
	}
	return c.Label
}

// GetPlaceholder returns the configured placeholder, defaulting to DefaultPlaceholder.
func (c *Config) GetPlaceholder() string {
	if c.Placeholder == "" {
		return DefaultPlaceholder
	}
	return c.Placeholder
}

// GetShowLabel returns whether the label is shown, defaulting to true.
func (c *Config) GetShowLabel() bool {
	if c.ShowLabel == nil {
		return true
	}
	return *c.ShowLabel
}

// GetMode returns "range" or "single".
func (c *Config) GetMode() string {
	if c.Range {
		return ModeRange
	}
	return ModeSingle
}

// PickerOptions converts the config into picker options, resolving relative
// bounds like "today" against now.
func (c *Config) PickerOptions(now time.Time) (picker.Options, error) {
	opts := picker.Options{
		Label:       c.GetLabel(),
		Placeholder: c.GetPlaceholder(),
		RangeMode:   c.Range,
		ShowInput:   c.ShowInput,
		ShowLabel:   c.GetShowLabel(),
	}

	if c.MinDate != "" {
		d, err := dateutil.ParseDate(c.MinDate, now)
		if err != nil {
			return picker.Options{}, fmt.Errorf("invalid min_date: %w", err)
		}
		opts.MinDate = &d
	}
	if c.MaxDate != "" {
		d, err := dateutil.ParseDate(c.MaxDate, now)
		if err != nil {
			return picker.Options{}, fmt.Errorf("invalid max_date: %w", err)
		}
		opts.MaxDate = &d
	}
	if opts.MinDate != nil && opts.MaxDate != nil && opts.MinDate.After(*opts.MaxDate) {
		return picker.Options{}, fmt.Errorf("min_date %s is after max_date %s",
			dateutil.FormatDate(opts.MinDate), dateutil.FormatDate(opts.MaxDate))
	}
	return opts, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "datepick", "config.json")
}

// Load reads config from the default path. A missing file yields defaults
// and a best-effort write of the default file.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg, err := LoadFrom(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = defaultConfig()
			if saveErr := cfg.SaveTo(path); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save default config: %v\n", saveErr)
			}
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads config from path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes config to path atomically.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

// atomicWrite writes data to path via a temp file renamed into place.
func atomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := renameio.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{Label: DefaultLabel, Placeholder: DefaultPlaceholder}
}
