package dispatcher

import (
	"fmt"
)

// Action identifies an editor command.
type Action int

const (
	ActionNone Action = iota
	ActionInsert
	ActionNewline
	ActionBackspace
	ActionDelete
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionSave
	ActionQuit
	ActionCancel
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionInsert:    "insert",
	ActionNewline:   "newline",
	ActionBackspace: "backspace",
	ActionDelete:    "delete",
	ActionMoveUp:    "move.up",
	ActionMoveDown:  "move.down",
	ActionMoveLeft:  "move.left",
	ActionMoveRight: "move.right",
	ActionSave:      "save",
	ActionQuit:      "quit",
	ActionCancel:    "cancel",
}

// String returns the action name, e.g. "move.up".
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// IsVertical returns true for commands that continue a sticky-column run.
func (a Action) IsVertical() bool {
	return a == ActionMoveUp || a == ActionMoveDown
}

// Command is a single editor command. Rune is only meaningful for
// ActionInsert.
type Command struct {
	Action Action
	Rune   rune
}

// Insert returns an insert command for r.
func Insert(r rune) Command {
	return Command{Action: ActionInsert, Rune: r}
}

// String returns a readable representation for logging.
func (c Command) String() string {
	if c.Action == ActionInsert {
		return fmt.Sprintf("insert(%q)", c.Rune)
	}
	return c.Action.String()
}

// Mode is the input mode of the control loop.
type Mode int

const (
	ModeEdit Mode = iota
	ModeSavePrompt
)

// String returns the label shown in the status bar.
func (m Mode) String() string {
	switch m {
	case ModeSavePrompt:
		return "SAVE"
	default:
		return "EDIT"
	}
}
