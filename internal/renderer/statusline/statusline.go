// Package statusline provides the status bar drawn on the bottom screen row.
package statusline

import (
	"strconv"

	"github.com/dshills/ted/internal/renderer/backend"
	"github.com/dshills/ted/internal/renderer/core"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// Styles holds the styles used by the status bar.
type Styles struct {
	Bar   core.Style
	Mode  core.Style
	Error core.Style
}

// DefaultStyles returns the default status bar styles.
func DefaultStyles() Styles {
	return Styles{
		Bar:   core.DefaultStyle().WithBackground(core.ColorGray).WithForeground(core.ColorWhite),
		Mode:  core.DefaultStyle().Bold().WithBackground(core.ColorBlue).WithForeground(core.ColorWhite),
		Error: core.DefaultStyle().Bold().WithBackground(core.ColorGray).WithForeground(core.ColorFromRGB(255, 80, 80)),
	}
}

// StatusLine renders the bottom status line including mode display, cursor
// position and an optional one-line prompt.
type StatusLine struct {
	mode       string
	line       int // 1-based
	col        int // 1-based
	totalLines int

	message     string
	messageType MessageType

	promptActive bool
	promptLabel  string
	promptText   string
	promptCursor int // rune offset into promptText

	styles Styles
}

// New creates a new status line.
func New(styles Styles) *StatusLine {
	return &StatusLine{
		mode:   "EDIT",
		line:   1,
		col:    1,
		styles: styles,
	}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// SetPrompt shows a prompt in place of the status bar.
func (s *StatusLine) SetPrompt(label, text string, cursor int) {
	s.promptActive = true
	s.promptLabel = label
	s.promptText = text
	s.promptCursor = cursor
}

// ClearPrompt returns to the normal status bar.
func (s *StatusLine) ClearPrompt() {
	s.promptActive = false
	s.promptLabel = ""
	s.promptText = ""
	s.promptCursor = 0
}

// PromptActive reports whether a prompt is displayed.
func (s *StatusLine) PromptActive() bool {
	return s.promptActive
}

// Render draws the status line on the given row and returns the cursor
// column when a prompt is active, or -1.
func (s *StatusLine) Render(b backend.Backend, row, width int) int {
	if width <= 0 {
		return -1
	}
	if s.promptActive {
		return s.renderPrompt(b, row, width)
	}
	s.renderStatusBar(b, row, width)
	return -1
}

// renderStatusBar renders the mode, position and message.
func (s *StatusLine) renderStatusBar(b backend.Backend, row, width int) {
	col := 0
	col = drawText(b, col, row, width, " "+s.mode+" ", s.styles.Mode)
	col = drawText(b, col, row, width, " "+s.formatPosition(), s.styles.Bar)

	right := ""
	rightStyle := s.styles.Bar
	if s.message != "" {
		right = s.message + " "
		if s.messageType == MessageError {
			rightStyle = s.styles.Error
		}
	}

	avail := width - col
	if avail <= 0 {
		return
	}
	pad := avail - core.StringWidth(right)
	if pad < 1 {
		// message does not fit; truncate it after a single space
		right = core.FitString(right, avail-1)
		pad = 1
	}
	col = drawText(b, col, row, col+pad, core.FitString("", pad), s.styles.Bar)
	drawText(b, col, row, width, right, rightStyle)
}

// renderPrompt renders "label text" and returns the cursor column.
func (s *StatusLine) renderPrompt(b backend.Backend, row, width int) int {
	col := drawText(b, 0, row, width, s.promptLabel, s.styles.Mode)
	col = drawText(b, col, row, width, " ", s.styles.Bar)
	start := col

	runes := []rune(s.promptText)
	cursor := start
	for i, r := range runes {
		if i == s.promptCursor {
			cursor = col
		}
		col = drawText(b, col, row, width, string(r), s.styles.Bar)
	}
	if s.promptCursor >= len(runes) {
		cursor = col
	}
	drawText(b, col, row, width, core.FitString("", width-col), s.styles.Bar)

	return min(cursor, width-1)
}

// formatPosition formats the position info, e.g. "Ln 3, Col 7 | 120 lines".
func (s *StatusLine) formatPosition() string {
	line := max(s.line, 1)
	col := max(s.col, 1)

	result := "Ln " + strconv.Itoa(line) + ", Col " + strconv.Itoa(col)
	if s.totalLines == 1 {
		result += " | 1 line"
	} else if s.totalLines > 1 {
		result += " | " + strconv.Itoa(s.totalLines) + " lines"
	}
	return result
}

// drawText draws s starting at x, never writing at or past limit, and
// returns the column after the last cell written.
func drawText(b backend.Backend, x, row, limit int, s string, style core.Style) int {
	for _, r := range s {
		w := max(core.RuneWidth(r), 1)
		if x+w > limit {
			break
		}
		b.SetCell(x, row, core.NewStyledCell(r, style))
		for i := 1; i < w; i++ {
			b.SetCell(x+i, row, core.Cell{Style: style})
		}
		x += w
	}
	return x
}
