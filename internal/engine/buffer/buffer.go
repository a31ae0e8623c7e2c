package buffer

import (
	"strings"
)

// line is a single line of text. It never contains a line break.
type line []rune

// Buffer holds an ordered sequence of lines and the cursor.
// The zero value is not usable; use NewBuffer or one of its variants.
type Buffer struct {
	lines []line
	cx    int
	cy    int
}

// NewBuffer creates a buffer with a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{
		lines: []line{{}},
	}
}

// NewBufferFromLines creates a buffer holding a copy of the given lines.
// Line breaks inside an element split it into several lines.
// An empty slice yields a buffer with one empty line.
func NewBufferFromLines(lines []string) *Buffer {
	b := &Buffer{
		lines: make([]line, 0, len(lines)),
	}
	for _, s := range lines {
		for _, part := range splitLines(s) {
			b.lines = append(b.lines, line(part))
		}
	}
	if len(b.lines) == 0 {
		b.lines = append(b.lines, line{})
	}
	return b
}

// NewBufferFromString creates a buffer from text, splitting on LF, CRLF and CR.
// A trailing line break produces a final empty line.
func NewBufferFromString(s string) *Buffer {
	return NewBufferFromLines(splitLines(s))
}

// splitLines splits s into lines on any of LF, CRLF or CR.
func splitLines(s string) []string {
	if !strings.ContainsAny(s, "\r\n") {
		return []string{s}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Cursor Accessors

// CursorCol returns the 0-indexed cursor column.
func (b *Buffer) CursorCol() int {
	return b.cx
}

// CursorRow returns the 0-indexed cursor row.
func (b *Buffer) CursorRow() int {
	return b.cy
}

// DisplayCursorCol returns the 1-indexed cursor column for display.
func (b *Buffer) DisplayCursorCol() int {
	return b.cx + 1
}

// DisplayCursorRow returns the 1-indexed cursor row for display.
func (b *Buffer) DisplayCursorRow() int {
	return b.cy + 1
}

// Cursor returns the cursor column and row.
func (b *Buffer) Cursor() (col, row int) {
	return b.cx, b.cy
}

// Position returns the cursor as a Point.
func (b *Buffer) Position() Point {
	return Point{Col: b.cx, Row: b.cy}
}

// SetCursor moves the cursor to (col, row), clamping both into range.
func (b *Buffer) SetCursor(col, row int) {
	if row < 0 {
		row = 0
	}
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	if col < 0 {
		col = 0
	}
	if n := len(b.lines[row]); col > n {
		col = n
	}
	b.cx, b.cy = col, row
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a line, or "" if row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the length of a line in characters, or 0 if row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text joins all lines with sep.
func (b *Buffer) Text(sep string) string {
	return strings.Join(b.Lines(), sep)
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// lastRow returns the index of the last line.
func (b *Buffer) lastRow() int {
	return len(b.lines) - 1
}
