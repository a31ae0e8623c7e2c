// Package viewport decides which part of the buffer is visible.
//
// A Viewport holds the window origin (start row, start column) into buffer
// coordinates. After every edit the control loop calls Update so that the
// cursor stays inside the window, then reads VisibleLines and
// CursorScreenPosition to render. Screen coordinates returned here are
// relative to the text area; chrome such as the gutter or the title bar is
// added by the renderer.
package viewport

import (
	"iter"
)

// Source is the read-only view of a buffer that the viewport needs.
type Source interface {
	// LineCount returns the number of lines. It is always at least 1.
	LineCount() int

	// Line returns the text of a line (0-indexed).
	Line(row int) string

	// Cursor returns the cursor column and row (0-indexed, in characters).
	Cursor() (col, row int)
}

// Viewport represents the visible window into a buffer.
// The zero value is a window anchored at the buffer origin.
type Viewport struct {
	startRow int
	startCol int
}

// New creates a viewport anchored at the buffer origin.
func New() *Viewport {
	return &Viewport{}
}

// StartRow returns the first visible buffer row.
func (v *Viewport) StartRow() int {
	return v.startRow
}

// StartCol returns the first visible buffer column.
func (v *Viewport) StartCol() int {
	return v.startCol
}

// Origin returns the window origin as (column, row).
func (v *Viewport) Origin() (col, row int) {
	return v.startCol, v.startRow
}

// Reset moves the window back to the buffer origin.
func (v *Viewport) Reset() {
	v.startRow = 0
	v.startCol = 0
}

// Update shifts the window so that the cursor of src lies inside a
// width x height rectangle. A dimension that is zero or negative leaves
// that axis untouched.
func (v *Viewport) Update(width, height int, src Source) {
	col, row := src.Cursor()

	if height > 0 {
		v.startRow = follow(v.startRow, row, height)

		// Don't leave the window hanging past the last line.
		if n := src.LineCount(); v.startRow+height > n {
			v.startRow = max(0, min(v.startRow, n-height))
		}
	}

	if width > 0 {
		v.startCol = follow(v.startCol, col, width)
	}
}

// follow returns the new start of a one-dimensional window of the given size
// so that pos lies in [start, start+size).
func follow(start, pos, size int) int {
	if pos >= start+size {
		start = pos + 1 - size
	} else if pos < start {
		start = pos
	}
	if start < 0 {
		start = 0
	}
	return start
}

// VisibleLines yields the buffer rows in the window together with their
// text, sliced to begin at the start column. Lines shorter than the start
// column yield an empty string. The sequence reads src afresh on every
// iteration and yields nothing when height is zero or negative.
func (v *Viewport) VisibleLines(src Source, height int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if height <= 0 {
			return
		}
		end := min(src.LineCount(), v.startRow+height)
		for row := v.startRow; row < end; row++ {
			if !yield(row, sliceFrom(src.Line(row), v.startCol)) {
				return
			}
		}
	}
}

// sliceFrom returns s without its first col characters.
func sliceFrom(s string, col int) string {
	if col <= 0 {
		return s
	}
	for i := range s {
		if col == 0 {
			return s[i:]
		}
		col--
	}
	return ""
}

// CursorScreenPosition returns the cursor position relative to the window's
// top-left corner as (x, y).
func (v *Viewport) CursorScreenPosition(src Source) (x, y int) {
	col, row := src.Cursor()
	return col - v.startCol, row - v.startRow
}

// IsVisible returns true if the buffer position lies inside a window of the
// given size.
func (v *Viewport) IsVisible(col, row, width, height int) bool {
	return row >= v.startRow && row < v.startRow+height &&
		col >= v.startCol && col < v.startCol+width
}
