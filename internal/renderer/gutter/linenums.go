package gutter

import (
	"fmt"
	"strconv"
	"strings"
)

// LineNumberMode defines how line numbers are displayed.
type LineNumberMode uint8

const (
	// LineNumberAbsolute shows absolute line numbers (1, 2, 3, ...).
	LineNumberAbsolute LineNumberMode = iota

	// LineNumberRelative shows distances from the cursor row.
	LineNumberRelative

	// LineNumberHybrid shows absolute for current line, relative for others.
	LineNumberHybrid
)

// String returns the configuration name of the mode.
func (m LineNumberMode) String() string {
	switch m {
	case LineNumberRelative:
		return "relative"
	case LineNumberHybrid:
		return "hybrid"
	default:
		return "absolute"
	}
}

// ParseLineNumberMode parses "absolute", "relative" or "hybrid".
func ParseLineNumberMode(s string) (LineNumberMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absolute":
		return LineNumberAbsolute, nil
	case "relative":
		return LineNumberRelative, nil
	case "hybrid":
		return LineNumberHybrid, nil
	}
	return LineNumberAbsolute, fmt.Errorf("unknown line number mode %q", s)
}

// LineNumberFormatter formats line numbers according to configuration.
type LineNumberFormatter struct {
	mode        LineNumberMode
	width       int
	currentLine int
}

// NewLineNumberFormatter creates a new line number formatter.
func NewLineNumberFormatter(mode LineNumberMode, width int) *LineNumberFormatter {
	return &LineNumberFormatter{
		mode:  mode,
		width: width,
	}
}

// SetMode changes the line number mode.
func (f *LineNumberFormatter) SetMode(mode LineNumberMode) {
	f.mode = mode
}

// SetWidth sets the display width for line numbers.
func (f *LineNumberFormatter) SetWidth(width int) {
	f.width = width
}

// SetCurrentLine sets the current cursor line for relative calculations.
func (f *LineNumberFormatter) SetCurrentLine(line int) {
	f.currentLine = line
}

// Format returns the formatted line number for a 0-based row.
func (f *LineNumberFormatter) Format(line int) string {
	return PadLeft(strconv.Itoa(f.calculateNumber(line)), f.width)
}

// FormatWithHighlight returns the formatted number and whether it is the
// cursor row.
func (f *LineNumberFormatter) FormatWithHighlight(line int) (string, bool) {
	return f.Format(line), line == f.currentLine
}

func (f *LineNumberFormatter) calculateNumber(line int) int {
	switch f.mode {
	case LineNumberRelative:
		return absDiff(line, f.currentLine)

	case LineNumberHybrid:
		if line == f.currentLine {
			return line + 1
		}
		return absDiff(line, f.currentLine)

	default:
		return line + 1
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
