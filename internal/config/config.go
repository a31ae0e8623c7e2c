package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ted/internal/input/keymap"
	"github.com/dshills/ted/internal/renderer/core"
)

// Config holds all editor settings.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
	Keymap  KeymapConfig  `toml:"keymap"`

	// Path is the file the settings were read from, empty if none.
	Path string `toml:"-"`
}

// EditorConfig holds editing area settings.
type EditorConfig struct {
	// LineNumbers is "absolute", "relative", "hybrid" or "off".
	LineNumbers string `toml:"line_numbers"`

	// GutterWidth is the width of the line number column, separator included.
	GutterWidth int `toml:"gutter_width"`
}

// UIConfig holds screen chrome settings.
type UIConfig struct {
	TitleBar  bool         `toml:"title_bar"`
	StatusBar bool         `toml:"status_bar"`
	Colors    ColorsConfig `toml:"colors"`
}

// ColorsConfig holds hex colours ("#rrggbb" or "#rgb"). Empty means the
// built-in colour.
type ColorsConfig struct {
	TitleFg       string `toml:"title_fg"`
	TitleBg       string `toml:"title_bg"`
	StatusFg      string `toml:"status_fg"`
	StatusBg      string `toml:"status_bg"`
	ModeFg        string `toml:"mode_fg"`
	ModeBg        string `toml:"mode_bg"`
	Gutter        string `toml:"gutter"`
	GutterCurrent string `toml:"gutter_current"`
	ErrorFg       string `toml:"error_fg"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level"`

	// File receives log output. Empty discards logs, since the terminal is
	// owned by the editor.
	File string `toml:"file"`
}

// KeymapConfig overrides the quit and save bindings.
type KeymapConfig struct {
	Quit []string `toml:"quit"`
	Save []string `toml:"save"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			LineNumbers: "absolute",
			GutterWidth: 6,
		},
		UI: UIConfig{
			TitleBar:  true,
			StatusBar: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Keymap: KeymapConfig{
			Quit: []string{"ctrl+q", "alt+backspace"},
			Save: []string{"ctrl+s"},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ted/config.toml, or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ted", "config.toml")
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	path     string
	explicit bool
	lookup   func(string) (string, bool)
}

// WithPath loads settings from path instead of the default location. A
// missing file is an error when the path was given explicitly.
func WithPath(path string) Option {
	return func(o *loadOptions) {
		if path != "" {
			o.path = path
			o.explicit = true
		}
	}
}

// WithEnv replaces os.LookupEnv, for tests.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(o *loadOptions) {
		o.lookup = lookup
	}
}

// Load resolves defaults, the settings file and environment overrides, then
// validates the result.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{
		path:   DefaultPath(),
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()

	if o.path != "" {
		data, err := os.ReadFile(o.path)
		switch {
		case err == nil:
			if err := cfg.parse(o.path, data); err != nil {
				return nil, err
			}
			cfg.Path = o.path
		case errors.Is(err, fs.ErrNotExist):
			if o.explicit {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, o.path)
			}
		default:
			return nil, fmt.Errorf("reading config file %s: %w", o.path, err)
		}
	}

	if err := cfg.applyEnv(o.lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse decodes TOML data over the current values.
func (c *Config) parse(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(c)
	if err == nil {
		return nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decodeErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decodeErr):
		pe.Line, pe.Column = decodeErr.Position()
	case errors.As(err, &strictErr):
		keys := make([]string, 0, len(strictErr.Errors))
		for _, e := range strictErr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		pe.Message = "unknown setting " + strings.Join(keys, ", ")
		if len(strictErr.Errors) > 0 {
			pe.Line, pe.Column = strictErr.Errors[0].Position()
		}
	}
	return pe
}

// envMapping maps environment variables to the setters they drive.
var envMapping = map[string]func(c *Config, value string) error{
	"TED_LOG_LEVEL": func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	},
	"TED_LOG_FILE": func(c *Config, v string) error {
		c.Logging.File = v
		return nil
	},
	"TED_LINE_NUMBERS": func(c *Config, v string) error {
		// accept booleans as well as mode names
		if b, err := strconv.ParseBool(v); err == nil {
			if b {
				c.Editor.LineNumbers = "absolute"
			} else {
				c.Editor.LineNumbers = "off"
			}
			return nil
		}
		c.Editor.LineNumbers = v
		return nil
	},
}

// applyEnv applies environment overrides. Empty values are treated as
// valid values, not as unset.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for name, set := range envMapping {
		if v, ok := lookup(name); ok {
			if err := set(c, strings.TrimSpace(v)); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var lineNumberModes = map[string]bool{"absolute": true, "relative": true, "hybrid": true, "off": true}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if !lineNumberModes[strings.ToLower(c.Editor.LineNumbers)] {
		fail("editor.line_numbers", "must be absolute, relative, hybrid or off", c.Editor.LineNumbers)
	}
	if c.Editor.GutterWidth < 2 || c.Editor.GutterWidth > 12 {
		fail("editor.gutter_width", "must be between 2 and 12", c.Editor.GutterWidth)
	}
	if !logLevels[strings.ToLower(c.Logging.Level)] {
		fail("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	for path, value := range c.UI.Colors.fields() {
		if value == "" {
			continue
		}
		if _, err := core.ColorFromHex(value); err != nil {
			fail("ui.colors."+path, "must be a hex colour like #1e90ff", value)
		}
	}

	for path, specs := range map[string][]string{"keymap.quit": c.Keymap.Quit, "keymap.save": c.Keymap.Save} {
		if len(specs) == 0 {
			fail(path, "needs at least one key", specs)
		}
		for _, spec := range specs {
			if _, err := keymap.ParseChord(spec); err != nil {
				fail(path, err.Error(), spec)
			}
		}
	}

	return errors.Join(errs...)
}

// fields returns the colour settings by their TOML key.
func (c ColorsConfig) fields() map[string]string {
	return map[string]string{
		"title_fg":       c.TitleFg,
		"title_bg":       c.TitleBg,
		"status_fg":      c.StatusFg,
		"status_bg":      c.StatusBg,
		"mode_fg":        c.ModeFg,
		"mode_bg":        c.ModeBg,
		"gutter":         c.Gutter,
		"gutter_current": c.GutterCurrent,
		"error_fg":       c.ErrorFg,
	}
}

// Color returns the parsed colour for a hex setting, or fallback when the
// setting is empty or invalid.
func Color(hex string, fallback core.Color) core.Color {
	if hex == "" {
		return fallback
	}
	c, err := core.ColorFromHex(hex)
	if err != nil {
		return fallback
	}
	return c
}
