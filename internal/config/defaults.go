// ABOUTME: Centralized configuration defaults for datepick
// ABOUTME: Contains display strings, modes, and storage permissions

package config

// Display settings
const (
	DefaultLabel       = "Date"
	DefaultPlaceholder = "YYYY-MM-DD"
	DateFormat         = "2006-01-02"
	MonthFormat        = "2006-01"
	CellWidth          = 4
)

// Modes
const (
	ModeSingle = "single"
	ModeRange  = "range"
)

// Storage settings
const (
	DefaultDirPerms = 0755
)
