package app

import (
	"strings"

	"github.com/dshills/ted/internal/config"
	"github.com/dshills/ted/internal/dispatcher"
	"github.com/dshills/ted/internal/input/keymap"
	"github.com/dshills/ted/internal/renderer"
	"github.com/dshills/ted/internal/renderer/core"
	"github.com/dshills/ted/internal/renderer/gutter"
)

// buildKeymap starts from the default bindings and applies the configured
// quit and save keys.
func buildKeymap(cfg config.KeymapConfig) (*keymap.Keymap, error) {
	km := keymap.Default()
	if len(cfg.Quit) > 0 {
		if err := km.Rebind(dispatcher.ActionQuit, cfg.Quit...); err != nil {
			return nil, err
		}
	}
	if len(cfg.Save) > 0 {
		if err := km.Rebind(dispatcher.ActionSave, cfg.Save...); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// renderOptions translates settings into renderer options.
func renderOptions(cfg *config.Config) (renderer.Options, error) {
	opts := renderer.DefaultOptions()
	opts.ShowTitleBar = cfg.UI.TitleBar
	opts.ShowStatusBar = cfg.UI.StatusBar

	opts.Gutter.Width = cfg.Editor.GutterWidth
	if strings.EqualFold(cfg.Editor.LineNumbers, "off") {
		opts.Gutter.ShowLineNumbers = false
	} else {
		mode, err := gutter.ParseLineNumberMode(cfg.Editor.LineNumbers)
		if err != nil {
			return opts, err
		}
		opts.Gutter.Mode = mode
	}
	if err := opts.Gutter.Validate(); err != nil {
		return opts, err
	}

	opts.Theme = themeFromConfig(cfg.UI.Colors)
	return opts, nil
}

// themeFromConfig overlays configured colours on the default theme. A
// section with neither colour set keeps its default style.
func themeFromConfig(c config.ColorsConfig) renderer.Theme {
	t := renderer.DefaultTheme()

	if c.TitleFg != "" || c.TitleBg != "" {
		t.Title = core.DefaultStyle().Bold().
			WithForeground(config.Color(c.TitleFg, core.ColorBlack)).
			WithBackground(config.Color(c.TitleBg, core.ColorWhite))
	}
	if c.StatusFg != "" || c.StatusBg != "" {
		fg := config.Color(c.StatusFg, core.ColorWhite)
		bg := config.Color(c.StatusBg, core.ColorGray)
		t.Status.Bar = core.DefaultStyle().WithForeground(fg).WithBackground(bg)
		t.Status.Error = t.Status.Error.WithBackground(bg)
	}
	if c.ModeFg != "" || c.ModeBg != "" {
		t.Status.Mode = core.DefaultStyle().Bold().
			WithForeground(config.Color(c.ModeFg, core.ColorWhite)).
			WithBackground(config.Color(c.ModeBg, core.ColorBlue))
	}
	if c.ErrorFg != "" {
		t.Status.Error = t.Status.Error.WithForeground(config.Color(c.ErrorFg, core.ColorWhite))
	}
	if c.Gutter != "" {
		t.Gutter = t.Gutter.WithForeground(config.Color(c.Gutter, core.ColorGray))
	}
	if c.GutterCurrent != "" {
		t.GutterCurrent = t.GutterCurrent.WithForeground(config.Color(c.GutterCurrent, core.ColorWhite))
	}
	return t
}
