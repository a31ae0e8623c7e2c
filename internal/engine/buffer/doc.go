// Package buffer provides the line-oriented text buffer at the heart of the
// editor. A Buffer owns an ordered sequence of lines and a single cursor.
//
// The buffer package provides:
//
//   - Character insertion and line splitting at the cursor
//   - Backspace and forward delete, merging lines at line boundaries
//   - Horizontal cursor movement that wraps across line boundaries
//   - Vertical cursor movement with a caller-owned sticky column
//
// Basic usage:
//
//	buf := buffer.NewBufferFromLines([]string{"hello", "world"})
//	buf.SetCursor(5, 0)
//	buf.InsertNewline() // lines: "hello", "", "world"
//
// Invariants:
//
// A Buffer always holds at least one line and no line ever contains a line
// break. The cursor row is a valid line index and the cursor column is a
// valid insertion offset into that line. Offsets count characters (runes),
// not bytes and not display cells.
//
// Every operation is total: edges of the buffer turn an operation into a
// no-op instead of an error.
//
// Thread Safety:
//
// A Buffer is owned by a single control loop and is not safe for concurrent
// use.
package buffer
