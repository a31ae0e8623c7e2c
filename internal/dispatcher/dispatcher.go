package dispatcher

import (
	"strings"

	"github.com/dshills/ted/internal/engine/buffer"
)

// Result describes the outcome of a dispatched command.
type Result struct {
	// Mode is the mode the control loop should be in next.
	Mode Mode

	// Edited is true when the document text changed.
	Edited bool

	// SavePath is set when the command asks for the document to be written.
	SavePath string

	// Quit is true when the editor should exit.
	Quit bool

	// Message is a short note for the status bar, if any.
	Message string
}

// Dispatcher applies commands to a document buffer and a save prompt.
// It is not safe for concurrent use.
type Dispatcher struct {
	doc    *buffer.Buffer
	path   string
	prompt *buffer.Buffer
	sticky buffer.StickyColumn
}

// New creates a dispatcher for doc. path is the file the document was
// loaded from and may be empty for a new, unnamed document.
func New(doc *buffer.Buffer, path string) *Dispatcher {
	if doc == nil {
		doc = buffer.NewBuffer()
	}
	return &Dispatcher{
		doc:    doc,
		path:   path,
		prompt: buffer.NewBuffer(),
	}
}

// Document returns the document buffer.
func (d *Dispatcher) Document() *buffer.Buffer {
	return d.doc
}

// Prompt returns the save prompt buffer.
func (d *Dispatcher) Prompt() *buffer.Buffer {
	return d.prompt
}

// Path returns the file the document is saved to.
func (d *Dispatcher) Path() string {
	return d.path
}

// SetPath records the file the document is saved to. The control loop calls
// it once a save to a new name has succeeded.
func (d *Dispatcher) SetPath(path string) {
	d.path = path
}

// StickyColumn returns the remembered column of the current vertical run.
func (d *Dispatcher) StickyColumn() (int, bool) {
	return d.sticky.Value()
}

// Dispatch applies cmd in the given mode.
func (d *Dispatcher) Dispatch(mode Mode, cmd Command) Result {
	if !cmd.Action.IsVertical() {
		d.sticky.Reset()
	}

	switch mode {
	case ModeSavePrompt:
		return d.dispatchPrompt(cmd)
	default:
		return d.dispatchEdit(cmd)
	}
}

func (d *Dispatcher) dispatchEdit(cmd Command) Result {
	res := Result{Mode: ModeEdit}
	b := d.doc

	switch cmd.Action {
	case ActionInsert:
		b.InsertChar(cmd.Rune)
		res.Edited = true
	case ActionNewline:
		b.InsertNewline()
		res.Edited = true
	case ActionBackspace:
		res.Edited = canBackspace(b)
		b.Backspace()
	case ActionDelete:
		res.Edited = canDelete(b)
		b.DeleteForward()
	case ActionMoveUp:
		b.MoveUp(&d.sticky)
	case ActionMoveDown:
		b.MoveDown(&d.sticky)
	case ActionMoveLeft:
		b.MoveLeft()
	case ActionMoveRight:
		b.MoveRight()
	case ActionSave:
		if d.path != "" {
			res.SavePath = d.path
			break
		}
		d.openPrompt("")
		res.Mode = ModeSavePrompt
	case ActionQuit:
		res.Quit = true
	}
	return res
}

func (d *Dispatcher) dispatchPrompt(cmd Command) Result {
	res := Result{Mode: ModeSavePrompt}
	p := d.prompt

	switch cmd.Action {
	case ActionInsert:
		if cmd.Rune == '\n' || cmd.Rune == '\r' {
			return d.confirmPrompt()
		}
		p.InsertChar(cmd.Rune)
	case ActionBackspace:
		// the prompt is a single line, so this never joins lines
		p.Backspace()
	case ActionDelete:
		p.DeleteForward()
	case ActionMoveLeft:
		if p.CursorCol() > 0 {
			p.MoveLeft()
		}
	case ActionMoveRight:
		if p.CursorCol() < p.LineLen(0) {
			p.MoveRight()
		}
	case ActionNewline, ActionSave:
		return d.confirmPrompt()
	case ActionCancel:
		res.Mode = ModeEdit
		res.Message = "save cancelled"
	case ActionQuit:
		res.Quit = true
	}
	return res
}

// openPrompt resets the prompt to hold initial with the cursor at its end.
func (d *Dispatcher) openPrompt(initial string) {
	d.prompt = buffer.NewBufferFromString(initial)
	d.prompt.SetCursor(d.prompt.LineLen(0), 0)
}

func (d *Dispatcher) confirmPrompt() Result {
	name := strings.TrimSpace(d.prompt.Line(0))
	if name == "" {
		return Result{Mode: ModeEdit, Message: "save cancelled: no file name"}
	}
	return Result{Mode: ModeEdit, SavePath: name}
}

func canBackspace(b *buffer.Buffer) bool {
	col, row := b.Cursor()
	return col > 0 || row > 0
}

func canDelete(b *buffer.Buffer) bool {
	col, row := b.Cursor()
	return col < b.LineLen(row) || row < b.LineCount()-1
}
