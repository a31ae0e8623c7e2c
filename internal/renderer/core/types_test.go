package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if c.String() != "default" {
		t.Errorf("expected default, got %q", c.String())
	}
}

func TestColorFromIndex(t *testing.T) {
	c := ColorFromIndex(42)

	if c.R != 42 {
		t.Errorf("expected index 42, got %d", c.R)
	}
	if !c.Indexed {
		t.Error("indexed color should be indexed")
	}
	if c.String() != "idx(42)" {
		t.Errorf("expected idx(42), got %q", c.String())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  bool
	}{
		{"#ff8040", ColorFromRGB(255, 128, 64), false},
		{"ff8040", ColorFromRGB(255, 128, 64), false},
		{"#fff", ColorWhite, false},
		{"#000000", ColorBlack, false},
		{"#12", Color{}, true},
		{"not-a-color", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ColorFromHex(tt.in)
			if tt.err {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true, R: 9}) {
		t.Error("default colors should be equal regardless of components")
	}
	if ColorFromIndex(1).Equals(ColorFromRGB(1, 0, 0)) {
		t.Error("indexed and RGB colors should differ")
	}
	if !ColorFromIndex(3).Equals(Color{R: 3, G: 7, Indexed: true}) {
		t.Error("indexed colors compare by index only")
	}
}

func TestColorBlend(t *testing.T) {
	if got := ColorBlack.Blend(ColorWhite, 0); !got.Equals(ColorBlack) {
		t.Errorf("blend at 0 should return the receiver, got %s", got)
	}
	if got := ColorBlack.Blend(ColorWhite, 1); !got.Equals(ColorWhite) {
		t.Errorf("blend at 1 should return the other color, got %s", got)
	}
	mid := ColorBlack.Blend(ColorWhite, 0.5)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("expected a gray, got %s", mid)
	}
	if got := ColorDefault.Blend(ColorWhite, 0.2); !got.IsDefault() {
		t.Errorf("default color should not blend, got %s", got)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithForeground(ColorWhite).WithBackground(ColorBlue).Bold().Reverse()

	if !s.Foreground.Equals(ColorWhite) {
		t.Errorf("expected white foreground, got %s", s.Foreground)
	}
	if !s.Background.Equals(ColorBlue) {
		t.Errorf("expected blue background, got %s", s.Background)
	}
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("expected bold and reverse, got %b", s.Attributes)
	}
	if s.Attributes.Has(AttrItalic) {
		t.Error("italic should not be set")
	}
	if s.Equals(DefaultStyle()) {
		t.Error("styled and default styles should differ")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'世', 2},
		{'\t', 0},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestFitString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pad", "ab", 4, "ab  "},
		{"exact", "abcd", 4, "abcd"},
		{"truncate", "abcdef", 4, "abc…"},
		{"zero", "abc", 0, ""},
		{"wide", "世界世界", 5, "世界…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitString(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if tt.width > 0 && StringWidth(got) != tt.width {
				t.Errorf("expected width %d, got %d", tt.width, StringWidth(got))
			}
		})
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(1, 2, 3, 4)

	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("expected 4x3, got %dx%d", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("rect should not be empty")
	}
	if !RectFromSize(0, 0, 0, 5).IsEmpty() {
		t.Error("zero-height rect should be empty")
	}
	if (ScreenRect{Top: 5, Bottom: 2}).Height() != 0 {
		t.Error("inverted rect should have zero height")
	}
}
