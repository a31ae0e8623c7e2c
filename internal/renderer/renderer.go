package renderer

import (
	"github.com/dshills/ted/internal/renderer/backend"
	"github.com/dshills/ted/internal/renderer/core"
	"github.com/dshills/ted/internal/renderer/gutter"
	"github.com/dshills/ted/internal/renderer/statusline"
	"github.com/dshills/ted/internal/renderer/viewport"
)

// Theme holds the styles used for screen chrome and text.
type Theme struct {
	Title         core.Style
	Text          core.Style
	Gutter        core.Style
	GutterCurrent core.Style
	Status        statusline.Styles
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Title:         core.DefaultStyle().Reverse().Bold(),
		Text:          core.DefaultStyle(),
		Gutter:        core.DefaultStyle().WithForeground(core.ColorGray),
		GutterCurrent: core.DefaultStyle().WithForeground(core.ColorWhite).Bold(),
		Status:        statusline.DefaultStyles(),
	}
}

// Options configures the renderer.
type Options struct {
	ShowTitleBar  bool
	ShowStatusBar bool
	Gutter        gutter.Config
	Theme         Theme
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowTitleBar:  true,
		ShowStatusBar: true,
		Gutter:        gutter.DefaultConfig(),
		Theme:         DefaultTheme(),
	}
}

// Prompt is a one-line input shown in place of the status bar.
type Prompt struct {
	Label  string
	Source viewport.Source
}

// Frame is everything needed to draw one screen.
type Frame struct {
	// Source is the document being edited.
	Source viewport.Source

	// Name is shown in the title bar.
	Name     string
	Modified bool

	// Mode is the label shown at the left of the status bar.
	Mode string

	// Message is shown at the right of the status bar.
	Message string
	IsError bool

	// Prompt, when set, replaces the status bar and receives the cursor.
	Prompt *Prompt
}

// Layout describes where each screen region lives.
type Layout struct {
	Title  core.ScreenRect
	Gutter core.ScreenRect
	Text   core.ScreenRect
	Status core.ScreenRect
}

// Renderer composes the title bar, gutter, text area and status bar onto a
// backend.
type Renderer struct {
	opts     Options
	backend  backend.Backend
	viewport *viewport.Viewport
	gutter   *gutter.Gutter
	status   *statusline.StatusLine

	frameCount uint64
}

// New creates a new renderer drawing to b. The viewport is shared with the
// caller so it can be reset when a new document is opened.
func New(b backend.Backend, vp *viewport.Viewport, opts Options) *Renderer {
	if vp == nil {
		vp = viewport.New()
	}
	return &Renderer{
		opts:     opts,
		backend:  b,
		viewport: vp,
		gutter:   gutter.New(opts.Gutter),
		status:   statusline.New(opts.Theme.Status),
	}
}

// Viewport returns the viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// FrameCount returns the number of frames drawn so far.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Layout computes the screen regions for the current backend size.
func (r *Renderer) Layout() Layout {
	w, h := r.backend.Size()
	return r.layout(max(w, 0), max(h, 0), r.opts.ShowStatusBar)
}

// layout splits a w x h screen. withStatus reserves the bottom row even when
// the status bar is disabled, so an open prompt stays visible.
func (r *Renderer) layout(w, h int, withStatus bool) Layout {
	var l Layout
	top, bottom := 0, h

	if r.opts.ShowTitleBar && bottom-top > 0 {
		l.Title = core.RectFromSize(top, 0, 1, w)
		top++
	}
	if withStatus && bottom-top > 0 {
		l.Status = core.RectFromSize(bottom-1, 0, 1, w)
		bottom--
	}

	gw := min(r.gutter.Width(), w)
	l.Gutter = core.RectFromSize(top, 0, bottom-top, gw)
	l.Text = core.RectFromSize(top, gw, bottom-top, w-gw)
	return l
}

// Render draws a full frame and flushes it to the backend.
func (r *Renderer) Render(f Frame) {
	w, h := r.backend.Size()
	lay := r.layout(max(w, 0), max(h, 0), r.opts.ShowStatusBar || f.Prompt != nil)
	text := lay.Text

	r.viewport.Update(text.Width(), text.Height(), f.Source)

	r.backend.Clear()
	if !lay.Title.IsEmpty() {
		r.renderTitle(lay.Title, f)
	}
	r.renderGutter(lay.Gutter, f.Source)
	r.renderText(text, f.Source)

	cx, cy, visible := r.textCursor(text, f.Source)

	if !lay.Status.IsEmpty() {
		if pc := r.renderStatus(lay.Status, f); pc >= 0 {
			cx, cy, visible = pc, lay.Status.Top, true
		}
	}

	if visible {
		r.backend.ShowCursor(cx, cy)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.frameCount++
}

// renderTitle draws "Editing '<name>'" across the title row.
func (r *Renderer) renderTitle(area core.ScreenRect, f Frame) {
	name := f.Name
	if name == "" {
		name = "[No Name]"
	}
	title := "Editing '" + name + "'"
	if f.Modified {
		title += " [+]"
	}
	drawString(r.backend, area.Left, area.Top, area.Right, core.FitString(title, area.Width()), r.opts.Theme.Title)
}

func (r *Renderer) renderGutter(area core.ScreenRect, src viewport.Source) {
	if area.IsEmpty() {
		return
	}
	_, cursorRow := src.Cursor()
	r.gutter.SetCurrentLine(cursorRow)

	n := src.LineCount()
	for i := 0; i < area.Height(); i++ {
		row := r.viewport.StartRow() + i
		s, style := r.gutter.RenderLine(row, row < n)

		st := r.opts.Theme.Gutter
		if style == gutter.StyleCurrentLine {
			st = r.opts.Theme.GutterCurrent
		}
		drawString(r.backend, area.Left, area.Top+i, area.Right, s, st)
	}
}

func (r *Renderer) renderText(area core.ScreenRect, src viewport.Source) {
	if area.IsEmpty() {
		return
	}
	for row, line := range r.viewport.VisibleLines(src, area.Height()) {
		y := area.Top + row - r.viewport.StartRow()
		drawString(r.backend, area.Left, y, area.Right, line, r.opts.Theme.Text)
	}
}

// textCursor translates the viewport cursor into a screen cell. Columns are
// character offsets, so wide runes before the cursor shift it to the right.
func (r *Renderer) textCursor(area core.ScreenRect, src viewport.Source) (x, y int, visible bool) {
	if area.IsEmpty() {
		return 0, 0, false
	}
	sx, sy := r.viewport.CursorScreenPosition(src)
	if sx < 0 || sy < 0 || sy >= area.Height() {
		return 0, 0, false
	}

	_, row := src.Cursor()
	x = area.Left + displayOffset(src.Line(row), r.viewport.StartCol(), sx)
	if x >= area.Right {
		x = area.Right - 1
	}
	return x, area.Top + sy, true
}

// renderStatus draws the status row and returns the prompt cursor column,
// or -1 when no prompt is shown.
func (r *Renderer) renderStatus(area core.ScreenRect, f Frame) int {
	if f.Prompt != nil {
		col, _ := f.Prompt.Source.Cursor()
		r.status.SetPrompt(f.Prompt.Label, f.Prompt.Source.Line(0), col)
	} else {
		r.status.ClearPrompt()
	}

	col, row := f.Source.Cursor()
	r.status.SetMode(f.Mode)
	r.status.SetPosition(row+1, col+1)
	r.status.SetTotalLines(f.Source.LineCount())

	switch {
	case f.Message == "":
		r.status.ClearMessage()
	case f.IsError:
		r.status.SetMessage(f.Message, statusline.MessageError)
	default:
		r.status.SetMessage(f.Message, statusline.MessageInfo)
	}

	return r.status.Render(r.backend, area.Top, area.Width())
}

// cellWidth is the number of cells a rune occupies on screen. Zero-width
// and control runes are drawn as a single blank.
func cellWidth(r rune) int {
	return max(core.RuneWidth(r), 1)
}

// displayOffset returns the cell offset of the n-th character after col in s.
func displayOffset(s string, col, n int) int {
	off, i := 0, 0
	for _, r := range s {
		if i >= col+n {
			break
		}
		if i >= col {
			off += cellWidth(r)
		}
		i++
	}
	// cursor past the end of the line
	if i < col+n {
		off += col + n - max(i, col)
	}
	return off
}

// drawString draws s from x, stopping before limit. Wide runes take two
// cells; the second is written as a zero rune continuation cell.
func drawString(b backend.Backend, x, y, limit int, s string, style core.Style) {
	for _, r := range s {
		w := cellWidth(r)
		if x+w > limit {
			return
		}
		if core.RuneWidth(r) == 0 {
			r = ' '
		}
		b.SetCell(x, y, core.Cell{Rune: r, Width: w, Style: style})
		for i := 1; i < w; i++ {
			b.SetCell(x+i, y, core.Cell{Style: style})
		}
		x += w
	}
}
