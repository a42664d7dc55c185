// Package renderer provides the display layer for the editor.
//
// Every frame is recomputed from scratch from the buffer content, the
// cursor offset and the scroll anchor:
//
//   - a background fill in the normal style
//   - the menu bar on row 0, with command mnemonics highlighted and the
//     file name and status message right-aligned
//   - a border of '+', '-' and '|' from row 1 to the last row
//   - the text, walked byte by byte from offset 0 and clipped to the
//     text region whose origin is (2, 2)
//   - the hardware cursor, placed where the walk met the cursor offset
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Frame -> cells)     │
//	├─────────────────────────────────────────┤
//	│  viewport.Geometry │ style.Theme        │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ Raw (x/term + ANSI) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	r.Render(renderer.Frame{Content: buf.Bytes(), Cursor: off})
package renderer
