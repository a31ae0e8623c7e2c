// Package gutter provides the line-number column drawn to the left of the
// text area.
package gutter

import (
	"fmt"
)

// DefaultWidth is the gutter width in cells, separator included.
const DefaultWidth = 6

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables line number display. When false the gutter
	// has zero width.
	ShowLineNumbers bool

	// Width is the total width including the trailing separator space.
	Width int

	// Mode selects absolute, relative or hybrid numbering.
	Mode LineNumberMode
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers: true,
		Width:           DefaultWidth,
		Mode:            LineNumberAbsolute,
	}
}

// Validate reports configuration values the gutter cannot honor.
func (c Config) Validate() error {
	if c.ShowLineNumbers && c.Width < 2 {
		return fmt.Errorf("gutter width must be at least 2, got %d", c.Width)
	}
	return nil
}

// CellStyle describes how to style a gutter cell.
type CellStyle uint8

const (
	StyleNormal CellStyle = iota
	StyleCurrentLine
	StyleDim
)

// Gutter formats the gutter for each screen row.
type Gutter struct {
	config    Config
	formatter *LineNumberFormatter
}

// New creates a new gutter with the given configuration.
func New(config Config) *Gutter {
	g := &Gutter{config: config}
	g.formatter = NewLineNumberFormatter(config.Mode, g.numberWidth())
	return g
}

// Width returns the gutter width in cells.
func (g *Gutter) Width() int {
	if !g.config.ShowLineNumbers || g.config.Width <= 0 {
		return 0
	}
	return g.config.Width
}

// Config returns the current configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// SetConfig updates the gutter configuration.
func (g *Gutter) SetConfig(config Config) {
	g.config = config
	g.formatter.SetMode(config.Mode)
	g.formatter.SetWidth(g.numberWidth())
}

// SetCurrentLine updates the cursor row used by relative modes.
func (g *Gutter) SetCurrentLine(line int) {
	g.formatter.SetCurrentLine(line)
}

// numberWidth is the width available for digits.
func (g *Gutter) numberWidth() int {
	return max(g.Width()-1, 0)
}

// RenderLine returns the gutter text for a buffer row and the style to draw
// it with. Rows past the end of the buffer produce a blank gutter. The result
// is always exactly Width() runes wide.
func (g *Gutter) RenderLine(line int, exists bool) (string, CellStyle) {
	w := g.Width()
	if w == 0 {
		return "", StyleNormal
	}
	if !exists {
		return PadLeft("", w), StyleDim
	}

	num, current := g.formatter.FormatWithHighlight(line)
	if len(num) > w-1 {
		// keep the least significant digits
		num = num[len(num)-(w-1):]
	}

	style := StyleNormal
	if current {
		style = StyleCurrentLine
	}
	return num + " ", style
}
