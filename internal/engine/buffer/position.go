package buffer

import (
	"bytes"
	"fmt"
)

// Point represents a line and column position.
// Both Line and Column are 0-indexed; Column is measured in bytes.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// clamp bounds offset to [0, LogicalSize].
func (b *Buffer) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > b.size {
		return b.size
	}
	return offset
}

// LineStart returns the offset just past the nearest newline before offset,
// or 0 on the first line.
func (b *Buffer) LineStart(offset int) int {
	offset = b.clamp(offset)
	return bytes.LastIndexByte(b.data[:offset], '\n') + 1
}

// LineEnd returns the offset of the newline terminating the line that
// contains offset, or LogicalSize on the last line.
func (b *Buffer) LineEnd(offset int) int {
	offset = b.clamp(offset)
	if i := bytes.IndexByte(b.data[offset:b.size], '\n'); i >= 0 {
		return offset + i
	}
	return b.size
}

// NextLineStart returns the offset one past the next newline at or after
// offset. It reports false when the scan reaches the end of content first.
func (b *Buffer) NextLineStart(offset int) (int, bool) {
	end := b.LineEnd(offset)
	if end >= b.size {
		return b.size, false
	}
	return end + 1, true
}

// PrevLineStart returns the start of the line before the one containing
// offset. It reports false when offset is already on the first line.
func (b *Buffer) PrevLineStart(offset int) (int, bool) {
	start := b.LineStart(offset)
	if start == 0 {
		return 0, false
	}
	return b.LineStart(start - 1), true
}

// OffsetToPoint converts an offset to a line/column position.
func (b *Buffer) OffsetToPoint(offset int) Point {
	offset = b.clamp(offset)
	line := bytes.Count(b.data[:offset], []byte{'\n'})
	return Point{Line: line, Column: offset - b.LineStart(offset)}
}

// LineCount returns the number of lines in the logical content.
// Empty content has one line.
func (b *Buffer) LineCount() int {
	return bytes.Count(b.data[:b.size], []byte{'\n'}) + 1
}
