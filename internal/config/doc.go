// Package config provides the configuration system for glint.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← GLINT_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/glint/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML or YAML; the format is chosen by extension.
// A missing file at the default location is not an error.
//
// # Basic Usage
//
//	cfg := config.New(config.WithPath(path))
//	if err := cfg.Load(); err != nil {
//		return err
//	}
//	ui := cfg.UI()
//
// # Sections
//
//	[ui]
//	backend = "tcell"      # or "ansi"
//	placeholder = "~"
//	product = "glint"
//
//	[logging]
//	level = "info"
//	file = ""
//
//	[keymap]
//	quit = "Ctrl+Q"
//	pageDown = ["PageDown", "Ctrl+F"]
package config
