// Package config loads and validates the roadviz configuration from
// file, environment and defaults.
package config

import "errors"

// Config is the top-level configuration struct for roadviz.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Server    ServerConfig    `mapstructure:"server"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Export    ExportConfig    `mapstructure:"export"`
}

// DataConfig locates the merged collision-casualty extract.
type DataConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds the serve-mode settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// DashboardConfig holds the shared dashboard knobs.
type DashboardConfig struct {
	Theme        string  `mapstructure:"theme"`
	GridCellSize float64 `mapstructure:"grid_cell_size"`
	TopN         int     `mapstructure:"top_n"`
	DebounceMS   int     `mapstructure:"debounce_ms"`
}

// ExportConfig holds the workbook export settings.
type ExportConfig struct {
	Path string `mapstructure:"path"`
}

// Theme names accepted by dashboard.theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Defaults applied before file and environment overrides.
const (
	DefaultServerListen = ":8080"
	DefaultTheme        = ThemeLight
	DefaultGridCellSize = 7.0
	DefaultTopN         = 10
	DefaultDebounceMS   = 120
	DefaultExportPath   = "collisions.xlsx"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidTheme indicates an unknown dashboard theme name.
	ErrInvalidTheme = errors.New("dashboard.theme must be light or dark")
	// ErrInvalidGridCellSize indicates a non-positive spatial cell size.
	ErrInvalidGridCellSize = errors.New("dashboard.grid_cell_size must be positive")
	// ErrInvalidTopN indicates a non-positive ranked chart bound.
	ErrInvalidTopN = errors.New("dashboard.top_n must be positive")
	// ErrInvalidDebounce indicates a negative debounce interval.
	ErrInvalidDebounce = errors.New("dashboard.debounce_ms must be non-negative")
	// ErrEmptyListen indicates a blank serve address.
	ErrEmptyListen = errors.New("server.listen must not be empty")
)

// Validate checks value ranges. Path settings stay unchecked here:
// commands resolve them against flags before use.
func (c *Config) Validate() error {
	if c.Dashboard.Theme != ThemeLight && c.Dashboard.Theme != ThemeDark {
		return ErrInvalidTheme
	}

	if c.Dashboard.GridCellSize <= 0 {
		return ErrInvalidGridCellSize
	}

	if c.Dashboard.TopN <= 0 {
		return ErrInvalidTopN
	}

	if c.Dashboard.DebounceMS < 0 {
		return ErrInvalidDebounce
	}

	if c.Server.Listen == "" {
		return ErrEmptyListen
	}

	return nil
}
