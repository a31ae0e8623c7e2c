// Package config provides the configuration system for ted.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← applied by cmd/ted
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← TED_LOG_LEVEL, TED_LOG_FILE, TED_LINE_NUMBERS
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← $XDG_CONFIG_HOME/ted/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # File Format
//
//	[editor]
//	line_numbers = "absolute"   # absolute, relative, hybrid or off
//	gutter_width = 6
//
//	[ui]
//	title_bar = true
//	status_bar = true
//
//	[ui.colors]
//	title_fg = "#000000"
//	title_bg = "#c0c0c0"
//
//	[logging]
//	level = "info"
//	file = "/tmp/ted.log"
//
//	[keymap]
//	quit = ["ctrl+q", "alt+backspace"]
//	save = ["ctrl+s"]
//
// Unknown keys are rejected so that typos surface as errors.
//
// # Basic Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Editor.GutterWidth)
package config
