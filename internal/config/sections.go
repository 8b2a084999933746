package config

import (
	"errors"
	"strings"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// Backend names accepted by ui.backend.
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// Log levels accepted by logging.level.
var logLevels = []string{"debug", "info", "warn", "error"}

// UIConfig provides type-safe access to UI settings.
type UIConfig struct {
	// Backend selects the terminal gateway ("tcell" or "ansi").
	Backend string

	// Placeholder is printed on rows past the end of the buffer.
	Placeholder string

	// Product is the name shown in the welcome banner.
	Product string
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string

	// File is the log file path. Empty disables logging.
	File string
}

// UI returns the UI configuration section.
func (c *Config) UI() UIConfig {
	return UIConfig{
		Backend:     c.stringOr("ui.backend", BackendTcell),
		Placeholder: c.stringOr("ui.placeholder", "~"),
		Product:     c.stringOr("ui.product", "glint"),
	}
}

// Logging returns the logging configuration section.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: strings.ToLower(c.stringOr("logging.level", "info")),
		File:  c.stringOr("logging.file", ""),
	}
}

// Keymap returns the key binding overrides, action name to key specs.
// Each entry may be a single spec or a list of specs.
func (c *Config) Keymap() (map[string][]string, error) {
	table, err := c.GetStringMap("keymap")
	if errors.Is(err, ErrSettingNotFound) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	result := make(map[string][]string, len(table))
	for action, v := range table {
		specs, err := toStringSlice("keymap."+action, v)
		if err != nil {
			return nil, err
		}
		result[action] = specs
	}
	return result, nil
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	for _, path := range []string{"ui.backend", "ui.placeholder", "ui.product", "logging.level", "logging.file"} {
		if _, err := c.GetString(path); err != nil && !errors.Is(err, ErrSettingNotFound) {
			return err
		}
	}

	ui := c.UI()
	if ui.Backend != BackendTcell && ui.Backend != BackendANSI {
		return &ValidationError{Path: "ui.backend", Message: "must be tcell or ansi", Value: ui.Backend}
	}
	if ui.Placeholder == "" {
		return &ValidationError{Path: "ui.placeholder", Message: "must not be empty", Value: ui.Placeholder}
	}

	lvl := c.Logging().Level
	if !validLevel(lvl) {
		return &ValidationError{Path: "logging.level", Message: "must be one of " + strings.Join(logLevels, ", "), Value: lvl}
	}

	if _, err := c.Keymap(); err != nil {
		return err
	}
	return nil
}

// stringOr returns the string at path, or def when it is missing or not a string.
func (c *Config) stringOr(path, def string) string {
	s, err := c.GetString(path)
	if err != nil {
		return def
	}
	return s
}

func validLevel(lvl string) bool {
	for _, l := range logLevels {
		if l == lvl {
			return true
		}
	}
	return false
}
