// Package keymap translates terminal key events into editor commands.
//
// A Keymap maps key chords (a key or rune plus modifiers) to dispatcher
// commands. Printable runes that are not bound insert themselves; Shift
// uppercases them.
//
// # Key Specifications
//
// Bindings can be specified in two formats:
//
//	"ctrl+q"        - readable notation, case-insensitive
//	"Alt+Backspace" - modifiers joined with '+'
//	"<C-s>"         - Vim angle bracket notation
//	"<A-BS>"        - Alt+Backspace
//	"esc"           - a named key without modifiers
//
// Unknown modifiers or key names are rejected with ErrInvalidSpec.
//
// # Default Bindings
//
//	Enter          newline
//	Backspace      delete before the cursor
//	Delete         delete at the cursor
//	Arrows         move
//	Tab            insert a tab
//	Ctrl+S         save
//	Ctrl+Q         quit
//	Alt+Backspace  quit
//	Esc            cancel the save prompt
package keymap
