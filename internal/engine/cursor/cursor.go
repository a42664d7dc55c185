package cursor

import "fmt"

// Text is the read access a cursor needs to navigate content.
// *buffer.Buffer satisfies it.
type Text interface {
	LogicalSize() int
	LineStart(offset int) int
	LineEnd(offset int) int
	NextLineStart(offset int) (int, bool)
	PrevLineStart(offset int) (int, bool)
}

// ColumnMode selects how vertical movement treats the current column.
type ColumnMode uint8

const (
	// ColumnPreserve lands on the same byte column, clamped to the line length.
	ColumnPreserve ColumnMode = iota
	// ColumnReset lands on the first column of the target line.
	ColumnReset
)

// String returns the config name of the mode.
func (m ColumnMode) String() string {
	switch m {
	case ColumnPreserve:
		return "preserve"
	case ColumnReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Cursor represents an insertion point in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	offset int
}

// NewCursor creates a cursor at the given offset.
func NewCursor(offset int) Cursor {
	if offset < 0 {
		offset = 0
	}
	return Cursor{offset: offset}
}

// Offset returns the cursor's byte offset.
func (c Cursor) Offset() int {
	return c.offset
}

// MoveBy returns a new cursor shifted by delta bytes.
func (c Cursor) MoveBy(delta int) Cursor {
	return NewCursor(c.offset + delta)
}

// Clamp returns a cursor clamped to the valid range [0, maxOffset].
func (c Cursor) Clamp(maxOffset int) Cursor {
	if c.offset < 0 {
		return Cursor{offset: 0}
	}
	if c.offset > maxOffset {
		return Cursor{offset: maxOffset}
	}
	return c
}

// Left moves one byte back, stopping at 0.
func (c Cursor) Left() Cursor {
	return c.MoveBy(-1)
}

// Right moves one byte forward, stopping at the end of content.
func (c Cursor) Right(t Text) Cursor {
	if c.offset >= t.LogicalSize() {
		return c.Clamp(t.LogicalSize())
	}
	return Cursor{offset: c.offset + 1}
}

// Up moves to the previous line.
//
// With ColumnReset a cursor inside a line first lands on that line's start;
// a cursor already at a line start lands on the previous line's start.
// On the first line both modes land on offset 0.
func (c Cursor) Up(t Text, mode ColumnMode) Cursor {
	c = c.Clamp(t.LogicalSize())
	start := t.LineStart(c.offset)
	prev, ok := t.PrevLineStart(c.offset)

	if mode == ColumnReset {
		if c.offset > start || !ok {
			return Cursor{offset: start}
		}
		return Cursor{offset: prev}
	}

	if !ok {
		return Cursor{offset: 0}
	}
	col := c.offset - start
	return Cursor{offset: min(prev+col, start-1)}
}

// Down moves to the next line. When no newline follows, the cursor stops at
// the end of content.
func (c Cursor) Down(t Text, mode ColumnMode) Cursor {
	c = c.Clamp(t.LogicalSize())
	next, ok := t.NextLineStart(c.offset)
	if !ok {
		return Cursor{offset: t.LogicalSize()}
	}
	if mode == ColumnReset {
		return Cursor{offset: next}
	}

	col := c.offset - t.LineStart(c.offset)
	return Cursor{offset: min(next+col, t.LineEnd(next))}
}

// Home moves to the start of the current line.
func (c Cursor) Home(t Text) Cursor {
	return Cursor{offset: t.LineStart(c.Clamp(t.LogicalSize()).offset)}
}

// End moves to the end of the current line.
func (c Cursor) End(t Text) Cursor {
	return Cursor{offset: t.LineEnd(c.Clamp(t.LogicalSize()).offset)}
}

// String returns a debug representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d)", c.offset)
}
