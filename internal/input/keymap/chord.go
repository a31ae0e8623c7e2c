package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/ted/internal/renderer/backend"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Chord is a single key press: a special key or a rune, plus modifiers.
// Rune is only set when Key is backend.KeyRune.
type Chord struct {
	Key  backend.Key
	Rune rune
	Mod  backend.ModMask
}

// String returns the chord in readable notation, e.g. "Ctrl+Q".
func (c Chord) String() string {
	var parts []string
	if c.Mod.Has(backend.ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if c.Mod.Has(backend.ModAlt) {
		parts = append(parts, "Alt")
	}
	if c.Mod.Has(backend.ModShift) {
		parts = append(parts, "Shift")
	}
	if c.Mod.Has(backend.ModMeta) {
		parts = append(parts, "Meta")
	}

	name := keyNames[c.Key]
	if c.Key == backend.KeyRune {
		name = string(unicode.ToUpper(c.Rune))
		if c.Rune == ' ' {
			name = "Space"
		}
	}
	return strings.Join(append(parts, name), "+")
}

// modifierNames maps modifier names (lowercase) to modifier values.
var modifierNames = map[string]backend.ModMask{
	"ctrl":    backend.ModCtrl,
	"control": backend.ModCtrl,
	"c":       backend.ModCtrl,
	"alt":     backend.ModAlt,
	"a":       backend.ModAlt,
	"option":  backend.ModAlt,
	"opt":     backend.ModAlt,
	"shift":   backend.ModShift,
	"s":       backend.ModShift,
	"meta":    backend.ModMeta,
	"m":       backend.ModMeta,
	"cmd":     backend.ModMeta,
	"super":   backend.ModMeta,
}

// keyAliases maps key names (lowercase) to special keys.
var keyAliases = map[string]backend.Key{
	"enter":     backend.KeyEnter,
	"return":    backend.KeyEnter,
	"cr":        backend.KeyEnter,
	"esc":       backend.KeyEscape,
	"escape":    backend.KeyEscape,
	"tab":       backend.KeyTab,
	"bs":        backend.KeyBackspace,
	"backspace": backend.KeyBackspace,
	"del":       backend.KeyDelete,
	"delete":    backend.KeyDelete,
	"up":        backend.KeyUp,
	"down":      backend.KeyDown,
	"left":      backend.KeyLeft,
	"right":     backend.KeyRight,
	"home":      backend.KeyHome,
	"end":       backend.KeyEnd,
	"pageup":    backend.KeyPageUp,
	"pgup":      backend.KeyPageUp,
	"pagedown":  backend.KeyPageDown,
	"pgdn":      backend.KeyPageDown,
}

// keyNames is the display name of each special key.
var keyNames = map[backend.Key]string{
	backend.KeyEnter:     "Enter",
	backend.KeyEscape:    "Esc",
	backend.KeyTab:       "Tab",
	backend.KeyBackspace: "Backspace",
	backend.KeyDelete:    "Delete",
	backend.KeyUp:        "Up",
	backend.KeyDown:      "Down",
	backend.KeyLeft:      "Left",
	backend.KeyRight:     "Right",
	backend.KeyHome:      "Home",
	backend.KeyEnd:       "End",
	backend.KeyPageUp:    "PageUp",
	backend.KeyPageDown:  "PageDown",
}

// ctrlLetters maps the terminal's control-letter keys to their letter.
var ctrlLetters = map[backend.Key]rune{
	backend.KeyCtrlA: 'a',
	backend.KeyCtrlB: 'b',
	backend.KeyCtrlC: 'c',
	backend.KeyCtrlD: 'd',
	backend.KeyCtrlE: 'e',
	backend.KeyCtrlF: 'f',
	backend.KeyCtrlG: 'g',
	backend.KeyCtrlK: 'k',
	backend.KeyCtrlL: 'l',
	backend.KeyCtrlN: 'n',
	backend.KeyCtrlO: 'o',
	backend.KeyCtrlP: 'p',
	backend.KeyCtrlQ: 'q',
	backend.KeyCtrlR: 'r',
	backend.KeyCtrlS: 's',
	backend.KeyCtrlT: 't',
	backend.KeyCtrlU: 'u',
	backend.KeyCtrlV: 'v',
	backend.KeyCtrlW: 'w',
	backend.KeyCtrlX: 'x',
	backend.KeyCtrlY: 'y',
	backend.KeyCtrlZ: 'z',
}

// ParseChord parses a key specification string into a Chord.
//
// Supported formats:
//   - Single character: "a", "1", "@"
//   - Special keys: "Enter", "Escape", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "alt+backspace"
//   - Vim-style: "<C-s>", "<A-BS>", "<Esc>"
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"), spec)
	}
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseParts(strings.Split(spec, "+"), spec)
	}
	return parseKey(spec, backend.ModNone)
}

// parseParts parses modifier parts followed by a key part.
func parseParts(parts []string, spec string) (Chord, error) {
	var mods backend.ModMask
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods |= mod
	}
	return parseKey(parts[len(parts)-1], mods)
}

// parseKey parses a key name or single character with known modifiers.
func parseKey(keyPart string, mods backend.ModMask) (Chord, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Chord{}, ErrInvalidSpec
	}

	lower := strings.ToLower(keyPart)
	if k, ok := keyAliases[lower]; ok {
		return Chord{Key: k, Mod: mods}, nil
	}
	if lower == "space" {
		return Chord{Key: backend.KeyRune, Rune: ' ', Mod: mods}, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	r := runes[0]
	if mods&^backend.ModShift != 0 {
		// Ctrl and Alt chords are case-insensitive.
		r = unicode.ToLower(r)
	}
	return Chord{Key: backend.KeyRune, Rune: r, Mod: mods}, nil
}

// ChordFromEvent normalizes a backend key event. Control-letter keys become
// the letter with ModCtrl, and letters with Ctrl or Alt are lowercased, so
// that terminals reporting either form match the same binding.
func ChordFromEvent(ev backend.Event) Chord {
	c := Chord{Key: ev.Key, Mod: ev.Mod}

	if letter, ok := ctrlLetters[ev.Key]; ok {
		return Chord{Key: backend.KeyRune, Rune: letter, Mod: ev.Mod | backend.ModCtrl}
	}
	if ev.Key == backend.KeyRune {
		c.Rune = ev.Rune
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
			c.Rune = unicode.ToLower(ev.Rune)
		}
	}
	return c
}
