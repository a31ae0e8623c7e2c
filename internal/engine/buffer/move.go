package buffer

// StickyColumn remembers the column a run of vertical moves started from, so
// that passing through a short line and back onto a long one returns the
// cursor to its original column.
//
// The zero value is an empty sticky column. It is owned by the control loop,
// which must call Reset for every command that is not a vertical move.
type StickyColumn struct {
	col   int
	valid bool
}

// Value returns the remembered column and whether one is set.
func (s *StickyColumn) Value() (int, bool) {
	if s == nil {
		return 0, false
	}
	return s.col, s.valid
}

// Reset clears the remembered column.
func (s *StickyColumn) Reset() {
	if s == nil {
		return
	}
	s.col = 0
	s.valid = false
}

// target returns the column to aim for, capturing cx on the first move of a run.
// A nil receiver behaves as a run of length one.
func (s *StickyColumn) target(cx int) int {
	if s == nil {
		return cx
	}
	if !s.valid {
		s.col = cx
		s.valid = true
	}
	return s.col
}

// Cursor Movement

// MoveUp moves the cursor to the previous line, aiming for the sticky column.
// Does nothing on the first line.
func (b *Buffer) MoveUp(sticky *StickyColumn) {
	if b.cy == 0 {
		return
	}
	col := sticky.target(b.cx)
	b.cy--
	b.cx = min(col, len(b.lines[b.cy]))
}

// MoveDown moves the cursor to the next line, aiming for the sticky column.
// Does nothing on the last line.
func (b *Buffer) MoveDown(sticky *StickyColumn) {
	if b.cy == b.lastRow() {
		return
	}
	col := sticky.target(b.cx)
	b.cy++
	b.cx = min(col, len(b.lines[b.cy]))
}

// MoveLeft moves the cursor one character left, wrapping to the end of the
// previous line. Does nothing at the start of the buffer.
func (b *Buffer) MoveLeft() {
	if b.cx > 0 {
		b.cx--
		return
	}
	if b.cy > 0 {
		// wrap to the end of the previous line
		b.cy--
		b.cx = len(b.lines[b.cy])
	}
}

// MoveRight moves the cursor one character right, wrapping to the start of
// the next line. Does nothing at the end of the buffer.
func (b *Buffer) MoveRight() {
	if b.cx < len(b.lines[b.cy]) {
		b.cx++
		return
	}
	if b.cy < b.lastRow() {
		b.cy++
		b.cx = 0
	}
}
