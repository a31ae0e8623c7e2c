package buffer

// Edit Operations

// InsertChar inserts r at the cursor and advances the cursor by one.
// A line break character splits the line instead, as InsertNewline does.
func (b *Buffer) InsertChar(r rune) {
	if r == '\n' || r == '\r' {
		b.InsertNewline()
		return
	}
	if b.cy < 0 || b.cy >= len(b.lines) {
		return
	}

	l := b.lines[b.cy]
	l = append(l, 0)
	copy(l[b.cx+1:], l[b.cx:])
	l[b.cx] = r
	b.lines[b.cy] = l
	b.cx++
}

// InsertNewline splits the current line at the cursor. Text before the
// cursor stays on the current line, text after it moves to a new line below.
// The cursor moves to the start of the new line.
func (b *Buffer) InsertNewline() {
	cur := b.lines[b.cy]

	var tail line
	if b.cy == b.lastRow() && b.cx == len(cur) {
		tail = line{}
	} else {
		tail = make(line, len(cur)-b.cx)
		copy(tail, cur[b.cx:])
		b.lines[b.cy] = cur[:b.cx:b.cx]
	}

	b.lines = append(b.lines, nil)
	copy(b.lines[b.cy+2:], b.lines[b.cy+1:])
	b.lines[b.cy+1] = tail

	b.cx = 0
	b.cy++
}

// Backspace deletes the character before the cursor. At the start of a line
// the line is joined onto the end of the previous one. At the start of the
// buffer it does nothing.
func (b *Buffer) Backspace() {
	if b.cx == 0 {
		if b.cy == 0 {
			return
		}
		prev := b.lines[b.cy-1]
		col := len(prev)
		b.lines[b.cy-1] = append(prev, b.lines[b.cy]...)
		b.removeLine(b.cy)
		b.cy--
		b.cx = col
		return
	}

	l := b.lines[b.cy]
	b.lines[b.cy] = append(l[:b.cx-1], l[b.cx:]...)
	b.cx--
}

// DeleteForward deletes the character under the cursor. At the end of a line
// the next line is joined onto the current one. At the end of the buffer it
// does nothing. The cursor never moves.
func (b *Buffer) DeleteForward() {
	l := b.lines[b.cy]
	if b.cx == len(l) {
		if b.cy == b.lastRow() {
			return
		}
		b.lines[b.cy] = append(l, b.lines[b.cy+1]...)
		b.removeLine(b.cy + 1)
		return
	}

	b.lines[b.cy] = append(l[:b.cx], l[b.cx+1:]...)
}

// removeLine drops the line at row. Callers guarantee at least one line remains.
func (b *Buffer) removeLine(row int) {
	copy(b.lines[row:], b.lines[row+1:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
}
