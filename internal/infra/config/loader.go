// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the fittrack directory.
const FileName = "config.toml"

// Config is the application configuration loaded from TOML.
type Config struct {
	Store StoreConfig `toml:"store"`
	Log   LogConfig   `toml:"log"`
	UI    UIConfig    `toml:"ui"`
}

// StoreConfig holds [store] settings.
type StoreConfig struct {
	Path string `toml:"path"` // Store file path; empty = <fittrack dir>/store.json
}

// LogConfig holds [log] settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// UIConfig holds [ui] settings.
type UIConfig struct {
	DefaultTab string `toml:"default_tab"` // Tab the TUI opens on
	WeekStart  string `toml:"week_start"`  // "sunday" or "monday" for the calendar grid
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{DefaultTab: "tasks", WeekStart: "sunday"},
	}
}

// Loader loads configuration from the fittrack directory.
type Loader struct {
	dir string // e.g. ~/.fittrack
}

// NewLoader creates a new Loader for the given fittrack directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load returns the configuration merged over defaults. A missing file
// yields the defaults; a malformed file is an error.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefaultConfig()

	path := filepath.Join(l.dir, FileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	normalize(cfg)
	return cfg, nil
}

// normalize repairs out-of-range values rather than failing; config
// problems should never make the dashboard unusable.
func normalize(cfg *Config) {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Log.Level = "info"
	}
	switch cfg.UI.WeekStart {
	case "sunday", "monday":
	default:
		cfg.UI.WeekStart = "sunday"
	}
}

// WriteDefault writes a commented default config file, failing if one
// already exists.
func (l *Loader) WriteDefault() (string, error) {
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(l.dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	content := `# fittrack configuration

[store]
# path = "/path/to/store.json"

[log]
level = "info" # debug, info, warn, error

[ui]
default_tab = "tasks" # tasks, matrix, tags, calendar, meals, workouts, stats
week_start = "sunday" # sunday or monday
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
