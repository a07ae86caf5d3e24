package app

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Constants
const (
	DefaultPort  = 8080
	DefaultScale = 1.0

	// Error messages
	ErrInvalidFormat    = "Invalid format"
	ErrInternalServer   = "Internal server error"
	ErrEmptySchedule    = "No sprints found in the schedule. Check the input format."
	ErrMethodNotAllowed = "Method not allowed"

	// Holiday regions
	HolidayRegionNRW = "NRW"

	// Download filenames
	PNGFilename  = "sprint_calendar.png"
	ICSFilename  = "sprint_calendar.ics"
	CSVFilename  = "sprint_calendar.csv"
	JSONFilename = "sprint_calendar.json"

	// ICS constants
	ICSProductID = "-//Winterberg//Sprintkalender//DE"
	ICSTimezone  = "Europe/Berlin"
)

// DefaultSampleSchedule pre-populates the input box so the expected line
// format is always visible (header line, then name + start + end).
const DefaultSampleSchedule = `Sprint Name Start Date End Date
0 2025-03-10 2025-03-21
1 2025-03-24 2025-04-11
2 2025-04-14 2025-05-02`

// Config holds the server configuration, optionally overridden by a TOML
// config file.
type Config struct {
	Port           int      `toml:"port"`
	Protected      bool     `toml:"protected"`
	HolidayRegion  string   `toml:"holiday_region"`
	Scale          float64  `toml:"scale"`
	Palette        []string `toml:"palette"`
	SampleSchedule string   `toml:"sample_schedule"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Port:           DefaultPort,
		Scale:          DefaultScale,
		SampleSchedule: DefaultSampleSchedule,
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.SampleSchedule == "" {
		cfg.SampleSchedule = DefaultSampleSchedule
	}
	return cfg, nil
}

// Global variables
var (
	Cfg       = DefaultConfig()
	Protected bool

	// Embedded files (set by main)
	IndexHTML []byte
)
