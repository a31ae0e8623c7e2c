package keymap

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/dshills/ted/internal/dispatcher"
	"github.com/dshills/ted/internal/renderer/backend"
)

// Binding maps a key specification to a command.
type Binding struct {
	Keys    string
	Command dispatcher.Command
}

// Keymap holds key bindings.
type Keymap struct {
	bindings map[Chord]dispatcher.Command
}

// New creates an empty keymap. Unbound printable runes still insert.
func New() *Keymap {
	return &Keymap{bindings: make(map[Chord]dispatcher.Command)}
}

// Bind adds a binding for spec, replacing any existing binding of the
// same chord.
func (k *Keymap) Bind(spec string, cmd dispatcher.Command) error {
	c, err := ParseChord(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	k.bindings[c] = cmd
	return nil
}

// Rebind replaces every binding of action with the given specs. All specs
// are validated before the keymap is changed.
func (k *Keymap) Rebind(action dispatcher.Action, specs ...string) error {
	chords := make([]Chord, 0, len(specs))
	for _, spec := range specs {
		c, err := ParseChord(spec)
		if err != nil {
			return fmt.Errorf("binding %q for %s: %w", spec, action, err)
		}
		chords = append(chords, c)
	}

	for c, cmd := range k.bindings {
		if cmd.Action == action {
			delete(k.bindings, c)
		}
	}
	for _, c := range chords {
		k.bindings[c] = dispatcher.Command{Action: action}
	}
	return nil
}

// Lookup returns the command for a key event. The second result is false
// when the event maps to nothing.
func (k *Keymap) Lookup(ev backend.Event) (dispatcher.Command, bool) {
	if ev.Type != backend.EventKey {
		return dispatcher.Command{}, false
	}

	c := ChordFromEvent(ev)
	if cmd, ok := k.bindings[c]; ok {
		return cmd, true
	}

	// Shift is implied by the rune itself, and special keys with Shift fall
	// back to their plain binding.
	if c.Mod.Has(backend.ModShift) {
		plain := c
		plain.Mod &^= backend.ModShift
		if c.Key == backend.KeyRune {
			plain.Rune = unicode.ToLower(c.Rune)
		}
		if cmd, ok := k.bindings[plain]; ok {
			return cmd, true
		}
	}

	if c.Key == backend.KeyRune && !c.Mod.Has(backend.ModCtrl) && !c.Mod.Has(backend.ModAlt) && !c.Mod.Has(backend.ModMeta) {
		r := ev.Rune
		if !unicode.IsPrint(r) {
			return dispatcher.Command{}, false
		}
		if ev.Mod.Has(backend.ModShift) {
			r = unicode.ToUpper(r)
		}
		return dispatcher.Insert(r), true
	}

	return dispatcher.Command{}, false
}

// Bindings returns the bindings sorted by key name, for help output.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for c, cmd := range k.bindings {
		out = append(out, Binding{Keys: c.String(), Command: cmd})
	}
	slices.SortFunc(out, func(a, b Binding) int {
		if a.Keys < b.Keys {
			return -1
		}
		if a.Keys > b.Keys {
			return 1
		}
		return 0
	})
	return out
}

// KeysFor returns the key names bound to action, sorted.
func (k *Keymap) KeysFor(action dispatcher.Action) []string {
	var keys []string
	for _, b := range k.Bindings() {
		if b.Command.Action == action {
			keys = append(keys, b.Keys)
		}
	}
	return keys
}
