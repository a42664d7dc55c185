package backend

import (
	"bufio"
	"io"
	"strconv"

	"github.com/jstene/edit/internal/renderer/core"
)

// ANSI sequence fragments used by the raw backend.
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// ?7l stops the terminal from scrolling when the bottom-right cell is written.
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// frameWriter emits a ScreenBuffer as ANSI output, diffing against the
// last frame it wrote.
type frameWriter struct {
	w     *bufio.Writer
	front *ScreenBuffer
	valid bool

	cursorX, cursorY int
	cursorValid      bool

	lastStyle core.Style
	lastValid bool
}

func newFrameWriter(w io.Writer) *frameWriter {
	return &frameWriter{w: bufio.NewWriterSize(w, 64*1024)}
}

// invalidate forces the next flush to repaint every cell.
func (f *frameWriter) invalidate() {
	f.valid = false
	f.cursorValid = false
	f.lastValid = false
}

// write emits raw bytes through the buffered writer.
func (f *frameWriter) write(p []byte) error {
	if _, err := f.w.Write(p); err != nil {
		return err
	}
	return f.w.Flush()
}

// flush writes the changed cells of back and places the cursor.
func (f *frameWriter) flush(back *ScreenBuffer, cursorX, cursorY int, cursorVisible bool) error {
	width, height := back.Size()
	if f.front == nil {
		f.front = NewScreenBuffer(width, height)
		f.valid = false
	}
	if fw, fh := f.front.Size(); fw != width || fh != height {
		f.front.Resize(width, height)
		f.valid = false
	}
	if !f.valid {
		f.w.Write(csiSGR0)
		f.w.Write(csiClear)
		f.cursorValid = false
		f.lastValid = false
	}

	w := f.w
	w.Write(csiCursorHide)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := back.GetCell(x, y)
			if f.valid && c.Equals(f.front.GetCell(x, y)) {
				continue
			}

			if !f.cursorValid || x != f.cursorX || y != f.cursorY {
				writeCursorPos(w, x, y)
				f.cursorX, f.cursorY = x, y
				f.cursorValid = true
			}
			if !f.lastValid || c.Style != f.lastStyle {
				writeSGR(w, c.Style)
				f.lastStyle = c.Style
				f.lastValid = true
			}

			r := c.Rune
			if r < 0x20 || r == 0x7f {
				r = ' '
			}
			w.WriteRune(r)

			f.front.SetCell(x, y, c)
			f.cursorX++
			if core.RuneWidth(r) > 1 {
				// The terminal advanced two columns; reposition before the next cell.
				f.cursorValid = false
			}
		}
	}
	f.valid = true

	w.Write(csiSGR0)
	f.lastValid = false

	if cursorVisible {
		writeCursorPos(w, cursorX, cursorY)
		f.cursorX, f.cursorY = cursorX, cursorY
		w.Write(csiCursorShow)
	}

	return w.Flush()
}

// writeCursorPos writes a cursor positioning sequence (0-indexed input).
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	w.WriteString(strconv.Itoa(y + 1))
	w.WriteByte(';')
	w.WriteString(strconv.Itoa(x + 1))
	w.WriteByte('H')
}

// writeSGR emits a single combined SGR sequence that resets and then
// applies style.
func writeSGR(w *bufio.Writer, s core.Style) {
	w.Write(csi)
	w.WriteByte('0')
	if s.Attributes.Has(core.AttrBold) {
		w.WriteString(";1")
	}
	if s.Attributes.Has(core.AttrDim) {
		w.WriteString(";2")
	}
	if s.Attributes.Has(core.AttrUnderline) {
		w.WriteString(";4")
	}
	if s.Attributes.Has(core.AttrReverse) {
		w.WriteString(";7")
	}
	if !s.Foreground.IsDefault() {
		writeColor(w, s.Foreground, 30, 90, "38")
	}
	if !s.Background.IsDefault() {
		writeColor(w, s.Background, 40, 100, "48")
	}
	w.WriteByte('m')
}

// writeColor writes one color parameter: base+N for the eight ANSI
// colors, bright+N for their bright variants, ext;5;N otherwise.
func writeColor(w *bufio.Writer, c core.Color, base, bright int, ext string) {
	w.WriteByte(';')
	switch {
	case c.Index < 8:
		w.WriteString(strconv.Itoa(base + int(c.Index)))
	case c.Index < 16:
		w.WriteString(strconv.Itoa(bright + int(c.Index) - 8))
	default:
		w.WriteString(ext)
		w.WriteString(";5;")
		w.WriteString(strconv.Itoa(int(c.Index)))
	}
}
