package engine

import (
	"io"

	"github.com/jstene/edit/internal/engine/buffer"
	"github.com/jstene/edit/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a line/column position.
	Point = buffer.Point

	// ColumnMode selects how vertical movement treats the cursor column.
	ColumnMode = cursor.ColumnMode
)

// Re-export constants.
const (
	ColumnPreserve = cursor.ColumnPreserve
	ColumnReset    = cursor.ColumnReset
)

// Engine binds a buffer and its cursor.
type Engine struct {
	buf        *buffer.Buffer
	cur        cursor.Cursor
	columnMode cursor.ColumnMode
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	c := newConfig(opts)
	return &Engine{
		buf:        buffer.NewFromBytes(c.content, c.bufOpts...),
		columnMode: c.columnMode,
	}
}

// NewFromReader creates an engine holding everything read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	c := newConfig(opts)
	buf, err := buffer.Load(r, c.bufOpts...)
	if err != nil {
		return nil, err
	}
	return &Engine{buf: buf, columnMode: c.columnMode}, nil
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Read Operations

// Buffer returns the underlying buffer for read access.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Text returns the logical content.
func (e *Engine) Text() string {
	return e.buf.String()
}

// Len returns the logical size.
func (e *Engine) Len() int {
	return e.buf.LogicalSize()
}

// Capacity returns the buffer capacity.
func (e *Engine) Capacity() int {
	return e.buf.Capacity()
}

// Cursor returns the cursor offset.
func (e *Engine) Cursor() int {
	return e.cur.Offset()
}

// CursorPoint returns the cursor's line/column position.
func (e *Engine) CursorPoint() Point {
	return e.buf.OffsetToPoint(e.cur.Offset())
}

// ColumnMode returns the vertical movement column policy.
func (e *Engine) ColumnMode() ColumnMode {
	return e.columnMode
}

// Edit Operations

// Insert writes ch at the cursor and advances the cursor past it.
func (e *Engine) Insert(ch byte) error {
	if err := e.buf.Insert(e.cur.Offset(), ch); err != nil {
		return err
	}
	e.cur = e.cur.MoveBy(1)
	return nil
}

// InsertNewline is Insert('\n').
func (e *Engine) InsertNewline() error {
	return e.Insert('\n')
}

// Backspace removes the byte before the cursor and moves the cursor back.
// It is a no-op at offset 0.
func (e *Engine) Backspace() error {
	if e.cur.Offset() == 0 {
		return nil
	}
	if err := e.buf.DeleteBefore(e.cur.Offset()); err != nil {
		return err
	}
	e.cur = e.cur.Left()
	return nil
}

// Save writes the content to w with trailing newline normalization.
// The cursor is unaffected.
func (e *Engine) Save(w io.Writer) (int, error) {
	return e.buf.Save(w)
}

// Movement Operations

// MoveLeft moves the cursor one byte back.
func (e *Engine) MoveLeft() {
	e.cur = e.cur.Left()
}

// MoveRight moves the cursor one byte forward.
func (e *Engine) MoveRight() {
	e.cur = e.cur.Right(e.buf)
}

// MoveUp moves the cursor to the previous line.
func (e *Engine) MoveUp() {
	e.cur = e.cur.Up(e.buf, e.columnMode)
}

// MoveDown moves the cursor to the next line.
func (e *Engine) MoveDown() {
	e.cur = e.cur.Down(e.buf, e.columnMode)
}

// MoveHome moves the cursor to the start of its line.
func (e *Engine) MoveHome() {
	e.cur = e.cur.Home(e.buf)
}

// MoveEnd moves the cursor to the end of its line.
func (e *Engine) MoveEnd() {
	e.cur = e.cur.End(e.buf)
}
