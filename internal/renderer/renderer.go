package renderer

import (
	"unicode/utf8"

	"github.com/jstene/edit/internal/renderer/backend"
	"github.com/jstene/edit/internal/renderer/core"
	"github.com/jstene/edit/internal/renderer/style"
	"github.com/jstene/edit/internal/renderer/viewport"
)

// Frame is the editor state one frame is computed from.
type Frame struct {
	// Content is the logical buffer content; it holds no sentinel.
	Content []byte

	// Cursor is the cursor byte offset, 0 <= Cursor <= len(Content).
	Cursor int

	// TopLine is the first visible logical line.
	TopLine int

	// FileName is shown on the right of the menu bar.
	FileName string

	// Status is a transient message shown next to the file name.
	Status        string
	StatusIsError bool
}

// Options configures the renderer.
type Options struct {
	// Colors enables the color theme when the terminal supports it.
	Colors bool

	// Menu lists the commands shown on the menu bar.
	Menu []MenuItem
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Colors: true,
		Menu:   DefaultMenu(),
	}
}

// Renderer draws frames onto a backend.
type Renderer struct {
	opts    Options
	backend backend.Backend
	theme   style.Theme
}

// New creates a new renderer with the given backend and options.
// The theme is chosen from the backend's color count.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:    opts,
		backend: b,
		theme:   style.ForTerminal(b.Colors(), opts.Colors),
	}
}

// Theme returns the active theme.
func (r *Renderer) Theme() style.Theme {
	return r.theme
}

// Geometry returns the frame layout for the current terminal size.
func (r *Renderer) Geometry() viewport.Geometry {
	w, h := r.backend.Size()
	return viewport.FrameGeometry(w, h)
}

// Render recomputes the whole screen from f and presents it.
// It returns the absolute cursor position and whether the cursor is
// inside the text region; a hidden cursor is not shown.
func (r *Renderer) Render(f Frame) (core.ScreenPos, bool) {
	g := r.Geometry()

	r.backend.Clear()
	r.backend.Fill(core.NewScreenRect(0, 0, g.Rows, g.Cols), r.blank(style.RoleNormal))

	r.drawMenu(g, f)
	r.drawBorder(g)
	line, col := r.drawText(g, f)

	pos, visible := r.placeCursor(g, f.TopLine, line, col)
	r.backend.Show()
	return pos, visible
}

// blank returns an empty cell in the style of role.
func (r *Renderer) blank(role style.Role) core.Cell {
	return core.NewStyledCell(' ', r.theme.Style(role))
}

// drawBorder draws '+' corners, '-' top and bottom edges and '|' sides.
func (r *Renderer) drawBorder(g viewport.Geometry) {
	if !g.HasBorder() {
		return
	}

	st := r.theme.Style(style.RoleBorder)
	b := g.Border
	top, bottom := b.Top, b.Bottom-1
	left, right := b.Left, b.Right-1

	for x := left + 1; x < right; x++ {
		r.backend.SetCell(x, top, core.NewStyledCell('-', st))
		r.backend.SetCell(x, bottom, core.NewStyledCell('-', st))
	}
	for y := top + 1; y < bottom; y++ {
		r.backend.SetCell(left, y, core.NewStyledCell('|', st))
		r.backend.SetCell(right, y, core.NewStyledCell('|', st))
	}
	for _, p := range [][2]int{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		r.backend.SetCell(p[0], p[1], core.NewStyledCell('+', st))
	}
}

// drawText walks the content from offset 0 with (line, col) starting at
// (-TopLine, 0) and draws every glyph that falls inside the text region.
// It returns the walk position recorded at the cursor offset, relative to
// the text origin.
func (r *Renderer) drawText(g viewport.Geometry, f Frame) (cursorLine, cursorCol int) {
	st := r.theme.Style(style.RoleNormal)
	width, height := g.TextWidth(), g.TextHeight()

	line, col := -f.TopLine, 0
	cursorLine, cursorCol = -1, 0
	found := false
	cont := 0 // remaining continuation bytes of a multi-byte glyph

	for off := 0; off < len(f.Content); off++ {
		if off == f.Cursor {
			cursorLine, cursorCol = line, col
			found = true
		}
		if found && line >= height {
			break
		}

		b := f.Content[off]
		if cont > 0 {
			cont--
			continue
		}
		if b == '\n' {
			line++
			col = 0
			continue
		}

		ch, size := glyph(f.Content[off:])
		cont = size - 1
		w := max(core.RuneWidth(ch), 1)

		if line >= 0 && line < height && col+w <= width {
			pos := g.ToScreen(line, col)
			r.backend.SetCell(pos.Col, pos.Row, core.NewStyledCell(ch, st))
		}
		col += w
	}

	if !found && f.Cursor >= len(f.Content) {
		cursorLine, cursorCol = line, col
	}
	return cursorLine, cursorCol
}

// glyph returns the rune drawn for the bytes at the start of p and how many
// bytes it consumes. Tabs draw as a blank, other control bytes and invalid
// UTF-8 as '?'.
func glyph(p []byte) (rune, int) {
	b := p[0]
	switch {
	case b == '\t':
		return ' ', 1
	case b < 0x20 || b == 0x7f:
		return '?', 1
	case b < utf8.RuneSelf:
		return rune(b), 1
	}

	ch, size := utf8.DecodeRune(p)
	if ch == utf8.RuneError && size <= 1 {
		return '?', 1
	}
	return ch, size
}

// placeCursor shows the hardware cursor at the recorded walk position, or
// hides it when the cursor line is outside the viewport.
//
// The walk column keeps counting past the right edge of a clipped line, so
// a cursor beyond the drawn glyphs would land on or past the border. The
// column is clamped to the last text column instead, keeping the cursor
// inside the text region.
func (r *Renderer) placeCursor(g viewport.Geometry, topLine, line, col int) (core.ScreenPos, bool) {
	vp := viewport.NewViewport(g.TextWidth(), g.TextHeight())
	vp.ScrollTo(topLine)

	row := vp.LineToScreenRow(line + vp.TopLine())
	if g.Text.IsEmpty() || row < 0 {
		r.backend.HideCursor()
		return core.ScreenPos{}, false
	}

	pos := g.ToScreen(row, min(col, vp.Width()-1))
	r.backend.ShowCursor(pos.Col, pos.Row)
	return pos, true
}
