package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ted/internal/renderer/core"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.Editor.GutterWidth)
	assert.Equal(t, "absolute", cfg.Editor.LineNumbers)
	assert.True(t, cfg.UI.TitleBar)
	assert.True(t, cfg.UI.StatusBar)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(WithEnv(noEnv))
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, Default().Editor, cfg.Editor)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(WithPath(filepath.Join(t.TempDir(), "nope.toml")), WithEnv(noEnv))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
line_numbers = "relative"
gutter_width = 8

[ui]
title_bar = false

[ui.colors]
title_bg = "#203040"

[logging]
level = "debug"
file = "/tmp/ted.log"

[keymap]
quit = ["ctrl+x"]
`)

	cfg, err := Load(WithPath(path), WithEnv(noEnv))
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "relative", cfg.Editor.LineNumbers)
	assert.Equal(t, 8, cfg.Editor.GutterWidth)
	assert.False(t, cfg.UI.TitleBar)
	assert.True(t, cfg.UI.StatusBar, "unset values keep their defaults")
	assert.Equal(t, "#203040", cfg.UI.Colors.TitleBg)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/ted.log", cfg.Logging.File)
	assert.Equal(t, []string{"ctrl+x"}, cfg.Keymap.Quit)
	assert.Equal(t, []string{"ctrl+s"}, cfg.Keymap.Save)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "[editor]\ngutter_width = = 3\n")

	_, err := Load(WithPath(path), WithEnv(noEnv))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Equal(t, 2, pe.Line)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 4\n")

	_, err := Load(WithPath(path), WithEnv(noEnv))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Message, "editor.tab_width")
}

func TestLoadTypeMismatch(t *testing.T) {
	path := writeConfig(t, "[editor]\ngutter_width = \"wide\"\n")

	_, err := Load(WithPath(path), WithEnv(noEnv))

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "[logging]\nlevel = \"warn\"\n")

	cfg, err := Load(WithPath(path), WithEnv(envMap(map[string]string{
		"TED_LOG_LEVEL":    "error",
		"TED_LOG_FILE":     " /var/log/ted.log ",
		"TED_LINE_NUMBERS": "false",
	})))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level, "environment beats the file")
	assert.Equal(t, "/var/log/ted.log", cfg.Logging.File)
	assert.Equal(t, "off", cfg.Editor.LineNumbers)
}

func TestEnvLineNumbersMode(t *testing.T) {
	cfg, err := Load(WithPath(writeConfig(t, "")), WithEnv(envMap(map[string]string{"TED_LINE_NUMBERS": "hybrid"})))
	require.NoError(t, err)
	assert.Equal(t, "hybrid", cfg.Editor.LineNumbers)
}

func TestEnvInvalidValueFailsValidation(t *testing.T) {
	_, err := Load(WithPath(writeConfig(t, "")), WithEnv(envMap(map[string]string{"TED_LOG_LEVEL": "loud"})))
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"line numbers", func(c *Config) { c.Editor.LineNumbers = "roman" }, "editor.line_numbers"},
		{"gutter too small", func(c *Config) { c.Editor.GutterWidth = 1 }, "editor.gutter_width"},
		{"gutter too big", func(c *Config) { c.Editor.GutterWidth = 40 }, "editor.gutter_width"},
		{"log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"colour", func(c *Config) { c.UI.Colors.ModeBg = "blue" }, "ui.colors.mode_bg"},
		{"bad key", func(c *Config) { c.Keymap.Save = []string{"hyper+s"} }, "keymap.save"},
		{"no quit key", func(c *Config) { c.Keymap.Quit = nil }, "keymap.quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrValidationFailed)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.path, ve.Path)
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Editor.GutterWidth = 0
	cfg.Logging.Level = "nope"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor.gutter_width")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestColor(t *testing.T) {
	assert.Equal(t, core.ColorFromRGB(0x20, 0x30, 0x40), Color("#203040", core.ColorWhite))
	assert.Equal(t, core.ColorWhite, Color("", core.ColorWhite))
	assert.Equal(t, core.ColorWhite, Color("zzz", core.ColorWhite))
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Path: "c.toml", Line: 3, Column: 7, Message: "bad"}
	assert.Equal(t, "parse error in c.toml at line 3, column 7: bad", err.Error())

	err = &ParseError{Path: "c.toml", Message: "bad"}
	assert.Equal(t, "parse error in c.toml: bad", err.Error())
}
