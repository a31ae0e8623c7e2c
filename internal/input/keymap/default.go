package keymap

import (
	"github.com/dshills/ted/internal/dispatcher"
)

// DefaultBindings returns the built-in bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Editing
		{Keys: "Enter", Command: dispatcher.Command{Action: dispatcher.ActionNewline}},
		{Keys: "Backspace", Command: dispatcher.Command{Action: dispatcher.ActionBackspace}},
		{Keys: "Delete", Command: dispatcher.Command{Action: dispatcher.ActionDelete}},
		{Keys: "Tab", Command: dispatcher.Insert('\t')},

		// Movement
		{Keys: "Up", Command: dispatcher.Command{Action: dispatcher.ActionMoveUp}},
		{Keys: "Down", Command: dispatcher.Command{Action: dispatcher.ActionMoveDown}},
		{Keys: "Left", Command: dispatcher.Command{Action: dispatcher.ActionMoveLeft}},
		{Keys: "Right", Command: dispatcher.Command{Action: dispatcher.ActionMoveRight}},

		// File and session
		{Keys: "Ctrl+S", Command: dispatcher.Command{Action: dispatcher.ActionSave}},
		{Keys: "Ctrl+Q", Command: dispatcher.Command{Action: dispatcher.ActionQuit}},
		{Keys: "Alt+Backspace", Command: dispatcher.Command{Action: dispatcher.ActionQuit}},
		{Keys: "Esc", Command: dispatcher.Command{Action: dispatcher.ActionCancel}},
	}
}

// Default returns a keymap loaded with DefaultBindings.
func Default() *Keymap {
	k := New()
	for _, b := range DefaultBindings() {
		// built-in specs are known to parse
		_ = k.Bind(b.Keys, b.Command)
	}
	return k
}
