package buffer

import "fmt"

// Point represents a cursor position.
// Both Row and Col are 0-indexed; Col counts characters.
type Point struct {
	Col int // 0-indexed character offset within the line
	Row int // 0-indexed line number
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// IsZero returns true if this is the origin (0:0).
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}
