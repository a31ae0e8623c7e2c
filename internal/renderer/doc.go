// Package renderer provides the display layer for the ted editor.
//
// The renderer is responsible for:
//   - Laying out the title bar, gutter, text area and status bar
//   - Feeding the text area size to the viewport before each frame
//   - Drawing the visible slice of the buffer
//   - Translating the buffer cursor into a screen cell
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│ Title bar: Editing 'name'               │
//	├──────┬──────────────────────────────────┤
//	│Gutter│ Text area (viewport.VisibleLines)│
//	├──────┴──────────────────────────────────┤
//	│ Status bar / prompt (statusline)        │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, viewport.New(), renderer.DefaultOptions())
//	r.Render(renderer.Frame{Source: buf, Name: "notes.txt", Mode: "EDIT"})
package renderer
