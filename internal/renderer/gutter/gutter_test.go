package gutter

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ShowLineNumbers {
		t.Error("ShowLineNumbers should be true by default")
	}
	if cfg.Width != 6 {
		t.Errorf("expected width 6, got %d", cfg.Width)
	}
	if cfg.Mode != LineNumberAbsolute {
		t.Errorf("expected absolute mode, got %s", cfg.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 1
	if cfg.Validate() == nil {
		t.Error("width 1 should be rejected")
	}

	cfg.ShowLineNumbers = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("width is irrelevant when hidden: %v", err)
	}
}

func TestGutterWidth(t *testing.T) {
	g := New(DefaultConfig())
	if g.Width() != 6 {
		t.Errorf("expected width 6, got %d", g.Width())
	}

	cfg := DefaultConfig()
	cfg.ShowLineNumbers = false
	g.SetConfig(cfg)
	if g.Width() != 0 {
		t.Errorf("hidden gutter should have width 0, got %d", g.Width())
	}
}

func TestRenderLineAbsolute(t *testing.T) {
	g := New(DefaultConfig())
	g.SetCurrentLine(2)

	tests := []struct {
		line   int
		exists bool
		want   string
		style  CellStyle
	}{
		{0, true, "    1 ", StyleNormal},
		{2, true, "    3 ", StyleCurrentLine},
		{98, true, "   99 ", StyleNormal},
		{5, false, "      ", StyleDim},
	}

	for _, tt := range tests {
		got, style := g.RenderLine(tt.line, tt.exists)
		if got != tt.want {
			t.Errorf("RenderLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
		if style != tt.style {
			t.Errorf("RenderLine(%d) style = %d, want %d", tt.line, style, tt.style)
		}
	}
}

func TestRenderLineOverflow(t *testing.T) {
	g := New(DefaultConfig())

	got, _ := g.RenderLine(123455, true)
	if got != "23456 " {
		t.Errorf("expected low digits kept, got %q", got)
	}
	if len(got) != g.Width() {
		t.Errorf("gutter text must fill width, got %d", len(got))
	}
}

func TestRenderLineHidden(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowLineNumbers = false
	g := New(cfg)

	if got, _ := g.RenderLine(0, true); got != "" {
		t.Errorf("hidden gutter should render nothing, got %q", got)
	}
}

func TestRenderLineModes(t *testing.T) {
	tests := []struct {
		mode LineNumberMode
		line int
		want string
	}{
		{LineNumberRelative, 4, "    0 "},
		{LineNumberRelative, 1, "    3 "},
		{LineNumberRelative, 7, "    3 "},
		{LineNumberHybrid, 4, "    5 "},
		{LineNumberHybrid, 6, "    2 "},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = tt.mode
			g := New(cfg)
			g.SetCurrentLine(4)

			if got, _ := g.RenderLine(tt.line, true); got != tt.want {
				t.Errorf("line %d: got %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineNumberMode(t *testing.T) {
	tests := []struct {
		in      string
		want    LineNumberMode
		wantErr bool
	}{
		{"", LineNumberAbsolute, false},
		{"absolute", LineNumberAbsolute, false},
		{"Relative", LineNumberRelative, false},
		{" hybrid ", LineNumberHybrid, false},
		{"sideways", LineNumberAbsolute, true},
	}

	for _, tt := range tests {
		got, err := ParseLineNumberMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLineNumberMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLineNumberMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("7", 3); got != "  7" {
		t.Errorf("expected %q, got %q", "  7", got)
	}
	if got := PadLeft("1234", 3); got != "1234" {
		t.Errorf("longer input should be unchanged, got %q", got)
	}
}
